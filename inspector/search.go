// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/inspect/snapshot"
)

// SearchThreshold is the minimum similarity score of a search result.
var SearchThreshold = 0.7

// SearchResult is one node found by [Context.Search].
type SearchResult struct {
	Node *snapshot.Node

	// Score is the similarity between the query and the name of the node,
	// from 0 to 1. Names that contain the query score at least 0.9,
	// and equal names score 1.
	Score float64
}

// Search returns the nodes of the current snapshot whose name or class is
// similar to the given query, case-insensitively, best match first and
// in pre-order for equal scores. At most limit results are returned,
// or all of them if limit is not positive.
func (c *Context) Search(query string, limit int) ([]SearchResult, error) {
	nodes, err := c.Nodes()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	jw := metrics.NewJaroWinkler()
	var res []SearchResult
	for _, n := range nodes {
		score := searchScore(query, strings.ToLower(n.Name()), jw)
		if n.Class() != nil {
			score = max(score, searchScore(query, n.Class().Name, jw))
		}
		if score >= SearchThreshold {
			res = append(res, SearchResult{Node: n, Score: score})
		}
	}
	slices.SortStableFunc(res, func(a, b SearchResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func searchScore(query, name string, m strutil.StringMetric) float64 {
	switch {
	case name == "":
		return 0
	case name == query:
		return 1
	case strings.Contains(name, query):
		return max(0.9, strutil.Similarity(query, name, m))
	}
	return strutil.Similarity(query, name, m)
}
