// Package luckydraw reshapes lucky draw workbooks into the drawing page's group data.
package luckydraw

import (
	"fmt"

	"go.uber.org/zap"
)

// TicketColumns names the ticket sheet's columns.
type TicketColumns struct {
	// Name is the person (agent) name column.
	Name string
	// Group is the group number column.
	Group string
	// Prize is the prize amount column.
	Prize string
}

// EligibilityColumns names the eligible agent sheet's columns.
type EligibilityColumns struct {
	Group  string
	Family string
	// AgentCode is optional; when empty the column is not read and agent codes stay empty.
	AgentCode  string
	AgentName  string
	AgencyCode string
	District   string
}

// Options configures extraction behavior.
type Options struct {
	Tickets     TicketColumns
	Eligibility EligibilityColumns
	// Logger receives progress and skipped-row diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Argument counts accepted by ColumnsFromArgs.
const (
	// ArgsWithoutAgentCode is the schema without an agent code column.
	ArgsWithoutAgentCode = 8
	// ArgsWithAgentCode is the full schema.
	ArgsWithAgentCode = 9
)

// UsageColumns is an example of the full column argument list.
var UsageColumns = []string{
	"Agent Name", "Group No.", "Lay See amount",
	"Group No.", "Family", "Agent", "Agent name", "Agency code", "District",
}

// ColumnsFromArgs maps positional column names to options.
//
// With nine names the order is: ticket name, ticket group, prize, roster group,
// family, agent code, agent name, agency code, district. Eight names omit the agent code.
func ColumnsFromArgs(args []string) (Options, error) {
	var opts Options
	switch len(args) {
	case ArgsWithAgentCode:
		opts.Tickets = TicketColumns{Name: args[0], Group: args[1], Prize: args[2]}
		opts.Eligibility = EligibilityColumns{
			Group:      args[3],
			Family:     args[4],
			AgentCode:  args[5],
			AgentName:  args[6],
			AgencyCode: args[7],
			District:   args[8],
		}
	case ArgsWithoutAgentCode:
		opts.Tickets = TicketColumns{Name: args[0], Group: args[1], Prize: args[2]}
		opts.Eligibility = EligibilityColumns{
			Group:      args[3],
			Family:     args[4],
			AgentName:  args[5],
			AgencyCode: args[6],
			District:   args[7],
		}
	default:
		return opts, fmt.Errorf("expected %d or %d column names, got %d",
			ArgsWithoutAgentCode, ArgsWithAgentCode, len(args))
	}
	return opts, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
