package luckydraw

import (
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"go.uber.org/zap"
)

// TicketAggregator tallies ticket rows per (group, person) in first-seen order.
type TicketAggregator struct {
	groups  []*models.WorkerGroup
	byGroup map[string]*models.WorkerGroup
	workers map[string]map[string]*models.WorkerAggregate

	rows    int
	skipped int
	prizes  int
}

// NewTicketAggregator returns an empty aggregator.
func NewTicketAggregator() *TicketAggregator {
	return &TicketAggregator{
		byGroup: make(map[string]*models.WorkerGroup),
		workers: make(map[string]map[string]*models.WorkerAggregate),
	}
}

// Add records one ticket row. Rows with an empty name or group are skipped and
// Add reports false. A positive prize adds to the worker's total and prize counts;
// any other prize value still counts the ticket.
func (a *TicketAggregator) Add(name, group, prize models.Cell) bool {
	a.rows++
	if name.IsEmpty() || group.IsEmpty() {
		a.skipped++
		return false
	}
	personName := name.Text()
	groupNo := group.Text()

	g, ok := a.byGroup[groupNo]
	if !ok {
		g = &models.WorkerGroup{GroupNo: groupNo}
		a.groups = append(a.groups, g)
		a.byGroup[groupNo] = g
		a.workers[groupNo] = make(map[string]*models.WorkerAggregate)
	}

	w, ok := a.workers[groupNo][personName]
	if !ok {
		w = &models.WorkerAggregate{Name: personName, GroupNo: groupNo}
		g.Workers = append(g.Workers, w)
		a.workers[groupNo][personName] = w
	}

	if amount, ok := prize.Number(); ok && amount > 0 {
		w.PrizeCounts.Add(models.PrizeKey(amount))
		w.TotalPrizeAmount += amount
		a.prizes++
	}
	w.Tickets++
	return true
}

// Groups returns the aggregated groups in first-seen order.
func (a *TicketAggregator) Groups() []*models.WorkerGroup {
	return a.groups
}

// AggregateTickets reads the ticket sheet of src and tallies its rows.
// A missing column aborts before any row is read.
func AggregateTickets(src RowSource, cols TicketColumns, stats *models.ExtractStats, log *zap.Logger) ([]*models.WorkerGroup, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sheet, err := TicketSheet(src.SheetList())
	if err != nil {
		return nil, err
	}
	log.Info("using ticket sheet", zap.String("sheet", sheet))

	headers, err := src.Headers(sheet)
	if err != nil {
		return nil, NewExtractionError(sheet, "tickets", err)
	}
	log.Debug("ticket sheet headers", zap.Strings("headers", headers))

	idx, err := ResolveColumns(sheet, headers, cols.Name, cols.Group, cols.Prize)
	if err != nil {
		return nil, NewExtractionError(sheet, "tickets", err)
	}
	nameCol, groupCol, prizeCol := idx[0], idx[1], idx[2]

	agg := NewTicketAggregator()
	err = src.Scan(sheet, func(row models.Row) error {
		if !agg.Add(row.Get(nameCol), row.Get(groupCol), row.Get(prizeCol)) {
			log.Debug("skipping ticket row without name or group", zap.Int("row", row.R))
			return nil
		}
		if p := row.Get(prizeCol); !p.IsEmpty() {
			if _, ok := p.Number(); !ok {
				log.Debug("prize value is not numeric, counted as no prize",
					zap.Int("row", row.R), zap.String("value", p.Text()))
			}
		}
		return nil
	})
	if err != nil {
		return nil, NewExtractionError(sheet, "tickets", err)
	}

	if stats != nil {
		stats.TicketRows = agg.rows
		stats.TicketRowsSkipped = agg.skipped
		stats.PrizeRows = agg.prizes
	}
	log.Info("aggregated tickets",
		zap.Int("rows", agg.rows),
		zap.Int("skipped", agg.skipped),
		zap.Int("groups", len(agg.groups)))
	return agg.Groups(), nil
}
