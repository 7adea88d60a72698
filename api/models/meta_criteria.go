package models

import "github.com/alex-pricope/ideathon-voting-system/storage"

type CriterionCreateRequest struct {
	RubricVersion string `json:"rubricVersion"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MinScore      int    `json:"minScore"`
	MaxScore      int    `json:"maxScore"`
	Order         int    `json:"order"`
}

type CriterionUpdateRequest struct {
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	MaxScore    int    `json:"maxScore"`
	Order       int    `json:"order"`
}

type CriterionResponse struct {
	RubricVersion string `json:"rubricVersion"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MinScore      int    `json:"minScore"`
	MaxScore      int    `json:"maxScore"`
	Order         int    `json:"order"`
}

func TransformCriterionFromStorage(c *storage.RubricCriterion) CriterionResponse {
	return CriterionResponse{
		RubricVersion: c.RubricVersion,
		Name:          c.Name,
		Description:   c.Description,
		MinScore:      c.MinScore,
		MaxScore:      c.MaxScore,
		Order:         c.Order,
	}
}

// StockRubrics are the two rubric versions shipped by default: the classic
// 4-criteria 1-10 sheet and the extended 5-criteria 1-20 sheet. They are not
// numerically comparable and must never be mixed within one event.
var StockRubrics = map[string][]CriterionCreateRequest{
	"classic": {
		{RubricVersion: "classic", Name: "innovation", Description: "Originality of the idea", MinScore: 1, MaxScore: 10, Order: 1},
		{RubricVersion: "classic", Name: "execution", Description: "Quality of the prototype", MinScore: 1, MaxScore: 10, Order: 2},
		{RubricVersion: "classic", Name: "impact", Description: "Potential real-world impact", MinScore: 1, MaxScore: 10, Order: 3},
		{RubricVersion: "classic", Name: "presentation", Description: "Clarity of the pitch", MinScore: 1, MaxScore: 10, Order: 4},
	},
	"extended": {
		{RubricVersion: "extended", Name: "innovation", Description: "Originality of the idea", MinScore: 1, MaxScore: 20, Order: 1},
		{RubricVersion: "extended", Name: "execution", Description: "Quality of the prototype", MinScore: 1, MaxScore: 20, Order: 2},
		{RubricVersion: "extended", Name: "impact", Description: "Potential real-world impact", MinScore: 1, MaxScore: 20, Order: 3},
		{RubricVersion: "extended", Name: "presentation", Description: "Clarity of the pitch", MinScore: 1, MaxScore: 20, Order: 4},
		{RubricVersion: "extended", Name: "teamwork", Description: "Collaboration during the event", MinScore: 1, MaxScore: 20, Order: 5},
	},
}
