package luckydraw

import (
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"go.uber.org/zap"
)

// EligibilityRow is one roster entry with its cells already trimmed.
type EligibilityRow struct {
	Group      string
	Family     string
	AgentCode  string
	AgentName  string
	AgencyCode string
	District   string
}

// EligibilityResolver merges roster rows per group.
// Family and district keep the first non-empty value seen; agents are appended as-is.
type EligibilityResolver struct {
	groups map[string]*models.GroupEligibility
	order  []string

	rows    int
	skipped int
}

// NewEligibilityResolver returns an empty resolver.
func NewEligibilityResolver() *EligibilityResolver {
	return &EligibilityResolver{groups: make(map[string]*models.GroupEligibility)}
}

// Add merges one roster row. Rows without a group are skipped and Add reports false.
func (r *EligibilityResolver) Add(row EligibilityRow) bool {
	r.rows++
	if row.Group == "" {
		r.skipped++
		return false
	}

	g, ok := r.groups[row.Group]
	if !ok {
		g = &models.GroupEligibility{
			GroupNo:  row.Group,
			Family:   row.Family,
			District: row.District,
		}
		r.groups[row.Group] = g
		r.order = append(r.order, row.Group)
	}
	if g.Family == "" && row.Family != "" {
		g.Family = row.Family
	}
	if g.District == "" && row.District != "" {
		g.District = row.District
	}

	if row.AgentName != "" {
		g.Agents = append(g.Agents, models.AgentRecord{
			Agent:      row.AgentCode,
			AgentName:  row.AgentName,
			AgencyCode: row.AgencyCode,
			District:   row.District,
		})
	}
	return true
}

// Groups returns the resolved groups keyed by group number.
func (r *EligibilityResolver) Groups() map[string]*models.GroupEligibility {
	return r.groups
}

// GroupOrder returns the group numbers in first-seen order.
func (r *EligibilityResolver) GroupOrder() []string {
	return r.order
}

// ResolveEligibility reads the eligible agent sheet of src, if there is one.
// A workbook without such a sheet yields an empty result.
func ResolveEligibility(src RowSource, cols EligibilityColumns, stats *models.ExtractStats, log *zap.Logger) (map[string]*models.GroupEligibility, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sheet, ok := EligibilitySheet(src.SheetList())
	if !ok {
		log.Info("no eligible agent sheet, groups will not be enriched")
		return map[string]*models.GroupEligibility{}, nil
	}
	log.Info("using eligible agent sheet", zap.String("sheet", sheet))

	headers, err := src.Headers(sheet)
	if err != nil {
		return nil, NewExtractionError(sheet, "eligibility", err)
	}
	log.Debug("eligible agent sheet headers", zap.Strings("headers", headers))

	names := []string{cols.Group, cols.Family, cols.AgentName, cols.AgencyCode, cols.District}
	if cols.AgentCode != "" {
		names = append(names, cols.AgentCode)
	}
	idx, err := ResolveColumns(sheet, headers, names...)
	if err != nil {
		return nil, NewExtractionError(sheet, "eligibility", err)
	}
	agentCodeCol := 0
	if cols.AgentCode != "" {
		agentCodeCol = idx[5]
	}

	res := NewEligibilityResolver()
	err = src.Scan(sheet, func(row models.Row) error {
		entry := EligibilityRow{
			Group:      row.Get(idx[0]).Text(),
			Family:     row.Get(idx[1]).Text(),
			AgentName:  row.Get(idx[2]).Text(),
			AgencyCode: row.Get(idx[3]).Text(),
			District:   row.Get(idx[4]).Text(),
		}
		if agentCodeCol > 0 {
			entry.AgentCode = row.Get(agentCodeCol).Text()
		}
		if !res.Add(entry) {
			log.Debug("skipping roster row without group", zap.Int("row", row.R))
		}
		return nil
	})
	if err != nil {
		return nil, NewExtractionError(sheet, "eligibility", err)
	}

	if stats != nil {
		stats.EligibilityRows = res.rows
		stats.EligibilitySkipped = res.skipped
		stats.EligibilityGroups = len(res.order)
	}
	log.Info("resolved eligibility",
		zap.Int("rows", res.rows),
		zap.Int("skipped", res.skipped),
		zap.Int("groups", len(res.order)))
	return res.Groups(), nil
}
