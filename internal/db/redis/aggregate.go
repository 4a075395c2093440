package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
)

// AggregateAvg computes the average of a numeric field over all documents
// matching query. The second return value reports whether any document
// matched; an empty result set yields (0, false, nil).
func (s *Store) AggregateAvg(ctx context.Context, index, query, field string) (float64, bool, error) {
	cmd := s.b().Arbitrary("FT.AGGREGATE").Args(
		index, query,
		"GROUPBY", "0",
		"REDUCE", "AVG", "1", "@"+field, "AS", "avg_val",
		"DIALECT", "2",
	).Build()

	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return 0, false, &db.Error{Op: db.OpAggregate, Err: err}
	}

	rows := parseAggregateRows(raw)
	if len(rows) == 0 {
		return 0, false, nil
	}

	valStr, ok := rows[0]["avg_val"]
	if !ok || valStr == "" {
		return 0, false, nil
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse avg_val: %w", err)
	}
	return val, true, nil
}

// AggregateCountBy groups documents matching query by the given field and
// returns a value -> count map.
func (s *Store) AggregateCountBy(ctx context.Context, index, query, field string) (map[string]int, error) {
	cmd := s.b().Arbitrary("FT.AGGREGATE").Args(
		index, query,
		"GROUPBY", "1", "@"+field,
		"REDUCE", "COUNT", "0", "AS", "count",
		"DIALECT", "2",
	).Build()

	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}

	counts := make(map[string]int)
	for _, row := range parseAggregateRows(raw) {
		key, ok := row[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(row["count"])
		if err != nil {
			continue
		}
		counts[key] = n
	}
	return counts, nil
}

// parseAggregateRows decodes an RESP2 FT.AGGREGATE reply. The first element
// is the group count; each following element is a flat key/value array.
func parseAggregateRows(raw []rueidis.RedisMessage) []map[string]string {
	if len(raw) < 2 {
		return nil
	}

	rows := make([]map[string]string, 0, len(raw)-1)
	for _, msg := range raw[1:] {
		pairs, err := msg.ToArray()
		if err != nil {
			continue
		}
		rows = append(rows, parseFieldPairs(pairs))
	}
	return rows
}
