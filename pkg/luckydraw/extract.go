package luckydraw

import (
	"fmt"
	"os"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/parser"
	"go.uber.org/zap"
)

// Extract reads the workbook at path and builds the draw data.
func Extract(path string, opts Options) (*models.DrawData, error) {
	wb, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	opts.logger().Info("reading workbook", zap.String("path", path))
	return Build(wb, opts)
}

// Build runs the ticket and roster passes over src and joins their results.
func Build(src RowSource, opts Options) (*models.DrawData, error) {
	log := opts.logger()
	var stats models.ExtractStats

	groups, err := AggregateTickets(src, opts.Tickets, &stats, log)
	if err != nil {
		return nil, err
	}

	eligibility, err := ResolveEligibility(src, opts.Eligibility, &stats, log)
	if err != nil {
		return nil, err
	}

	data := Project(groups, eligibility)
	stats.Groups = data.Stats.Groups
	stats.Workers = data.Stats.Workers
	stats.UnmatchedGroups = data.Stats.UnmatchedGroups
	data.Stats = stats

	log.Info("projected draw data",
		zap.Int("groups", stats.Groups),
		zap.Int("workers", stats.Workers),
		zap.Int("unmatched_groups", stats.UnmatchedGroups))
	return data, nil
}

// openWorkbook checks that path exists and decodes it.
func openWorkbook(path string) (*parser.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	wb, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWorkbookUnreadable, path, err)
	}
	return wb, nil
}
