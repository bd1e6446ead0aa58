package synth

import (
	"fmt"

	"github.com/hazicy/override-rules/internal/model"
)

// validateAcyclic asserts that no group's transitive member closure includes
// itself. Member references that are not group names (proxy names, DIRECT,
// REJECT) are leaves. The dialer-proxy target counts as a selection
// dependency and is part of the closure.
func validateAcyclic(groups []model.Group) error {
	byName := make(map[string]model.Group, len(groups))
	for _, g := range groups {
		if _, dup := byName[g.Name]; dup {
			return &BuildError{
				AppError: model.AppError{
					Code:    "GROUP_GRAPH_INVALID",
					Message: fmt.Sprintf("策略组名重复：%s", g.Name),
					Stage:   "synthesize",
					Snippet: g.Name,
				},
			}
		}
		byName[g.Name] = g
	}

	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)
	color := make(map[string]int, len(groups))

	var visit func(name string) error
	visit = func(name string) error {
		g, ok := byName[name]
		if !ok {
			return nil // proxy name or terminal policy
		}
		switch color[name] {
		case gray:
			return &BuildError{
				AppError: model.AppError{
					Code:    "GROUP_GRAPH_CYCLE",
					Message: fmt.Sprintf("策略组存在循环引用：%s", name),
					Stage:   "synthesize",
					Snippet: name,
				},
			}
		case black:
			return nil
		}
		color[name] = gray
		for _, ref := range g.Refs() {
			if ref == name {
				return &BuildError{
					AppError: model.AppError{
						Code:    "GROUP_GRAPH_CYCLE",
						Message: fmt.Sprintf("策略组引用自身：%s", name),
						Stage:   "synthesize",
						Snippet: name,
					},
				}
			}
			if err := visit(ref); err != nil {
				return err
			}
		}
		color[name] = black
		return nil
	}

	for _, g := range groups {
		if err := visit(g.Name); err != nil {
			return err
		}
	}
	return nil
}
