package luckydraw

import (
	"fmt"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
)

// agentInfo is the roster data attached to a worker.
type agentInfo struct {
	agent      string
	agencyCode string
	district   string
}

// Project joins ticket groups with roster data into the output document.
// Ticket group order decides the synthetic ids; roster-only groups are dropped.
func Project(groups []*models.WorkerGroup, eligibility map[string]*models.GroupEligibility) *models.DrawData {
	data := &models.DrawData{Groups: make([]models.Group, 0, len(groups))}

	for i, wg := range groups {
		groupSeq := i + 1
		name := wg.GroupNo
		district := ""
		agents := map[string]agentInfo{}

		if elig, ok := eligibility[wg.GroupNo]; ok {
			if elig.Family != "" {
				name = elig.Family
			}
			district = elig.District
			// Later roster rows for the same name replace earlier ones.
			for _, a := range elig.Agents {
				agents[a.AgentName] = agentInfo{
					agent:      a.Agent,
					agencyCode: a.AgencyCode,
					district:   a.District,
				}
			}
		} else {
			data.Stats.UnmatchedGroups++
		}

		g := models.Group{
			ID:          GroupID(groupSeq),
			Name:        name,
			GroupNo:     wg.GroupNo,
			District:    district,
			Icon:        models.GroupIcon,
			Description: groupDescription(district, wg.GroupNo),
			Workers:     make([]models.Worker, 0, len(wg.Workers)),
		}

		for j, w := range wg.Workers {
			info := agents[w.Name]
			g.Workers = append(g.Workers, models.Worker{
				Name:             w.Name,
				Tickets:          w.Tickets,
				EmployeeID:       EmployeeID(groupSeq, j+1),
				GroupNo:          wg.GroupNo,
				Agent:            info.agent,
				AgencyCode:       info.agencyCode,
				District:         info.district,
				PrizeCounts:      w.PrizeCounts,
				TotalPrizeAmount: w.TotalPrizeAmount,
			})
		}

		data.Stats.Workers += len(g.Workers)
		data.Groups = append(data.Groups, g)
	}

	data.Stats.Groups = len(data.Groups)
	return data
}

// GroupID returns the synthetic id of the n-th group ("group-3").
func GroupID(n int) string {
	return fmt.Sprintf("group-%d", n)
}

// EmployeeID returns the synthetic id of the m-th worker in the n-th group ("EMP003012").
// Sequences above 999 simply widen the id.
func EmployeeID(n, m int) string {
	return fmt.Sprintf("EMP%03d%03d", n, m)
}

func groupDescription(district, groupNo string) string {
	if district != "" {
		return district + " District"
	}
	return "Group " + groupNo
}
