package models

// WorkerAggregate accumulates one person's tickets within a group.
type WorkerAggregate struct {
	// Name is the trimmed person name.
	Name string `json:"name"`
	// GroupNo is the trimmed group identifier.
	GroupNo string `json:"group_no"`
	// Tickets is the number of accepted ticket rows.
	Tickets int `json:"tickets"`
	// PrizeCounts counts prize rows by currency label.
	PrizeCounts PrizeCounts `json:"prize_counts"`
	// TotalPrizeAmount is the sum of all positive prize values.
	TotalPrizeAmount float64 `json:"total_prize_amount"`
}

// WorkerGroup holds the workers of one group in first-seen order.
type WorkerGroup struct {
	// GroupNo is the group identifier.
	GroupNo string `json:"group_no"`
	// Workers lists the group's workers in first-seen order.
	Workers []*WorkerAggregate `json:"workers"`
}

// AgentRecord is one roster entry of an eligible agent.
type AgentRecord struct {
	// Agent is the agent code (empty when the schema has no agent code column).
	Agent string `json:"agent"`
	// AgentName is the agent display name, matched against worker names.
	AgentName string `json:"agent_name"`
	// AgencyCode is the agent's agency code.
	AgencyCode string `json:"agency_code"`
	// District is the district given on this agent's own row.
	District string `json:"district"`
}

// GroupEligibility is the resolved roster data for one group.
type GroupEligibility struct {
	// GroupNo is the group identifier.
	GroupNo string `json:"group_no"`
	// Family is the first non-empty family name seen for the group.
	Family string `json:"family"`
	// District is the first non-empty district seen for the group.
	District string `json:"district"`
	// Agents lists every roster row with an agent name, duplicates included.
	Agents []AgentRecord `json:"agents"`
}

// ExtractStats counts what happened to the rows during one extraction.
type ExtractStats struct {
	TicketRows         int `json:"ticket_rows"`
	TicketRowsSkipped  int `json:"ticket_rows_skipped"`
	PrizeRows          int `json:"prize_rows"`
	EligibilityRows    int `json:"eligibility_rows"`
	EligibilitySkipped int `json:"eligibility_rows_skipped"`
	EligibilityGroups  int `json:"eligibility_groups"`
	Groups             int `json:"groups"`
	Workers            int `json:"workers"`
	UnmatchedGroups    int `json:"unmatched_groups"`
}
