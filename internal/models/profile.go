// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"context"

	"folio/internal/content"
)

// HeroButton is one call-to-action button in the hero block.
type HeroButton struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HeroImage is the hero portrait.
type HeroImage struct {
	Alt string `json:"alt"`
	Src string `json:"src"`
}

// Hero is the profile hero block.
type Hero struct {
	Title       string       `json:"title"`
	Position    string       `json:"position"`
	Description string       `json:"description"`
	Buttons     []HeroButton `json:"buttons"`
	Image       HeroImage    `json:"image"`
}

// Experience is one work history entry.
type Experience struct {
	Company string   `json:"company"`
	Logo    string   `json:"logo"`
	Role    string   `json:"role"`
	Range   string   `json:"range"`
	Details []string `json:"details"`
	Stack   []string `json:"stack"`
}

// SkillGroup is one titled group of skills.
type SkillGroup struct {
	Title string   `json:"title"`
	Color string   `json:"color"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

// Education is one education history entry.
type Education struct {
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Range    string `json:"range"`
	Location string `json:"location"`
	Logo     string `json:"logo"`
	Details  string `json:"details"`
}

// ProfileContent is the profile.json document rendered on the home page.
type ProfileContent struct {
	Hero       Hero         `json:"hero"`
	Experience []Experience `json:"experience"`
	Skills     []SkillGroup `json:"skills"`
	Education  []Education  `json:"education"`
}

// LoadProfile fetches and decodes profile.json from the store.
func LoadProfile(ctx context.Context, store content.Store) (*ProfileContent, error) {
	var profile ProfileContent
	if err := loadJSON(ctx, store, "profile.json", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
