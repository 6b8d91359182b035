// Package quality scans experience bullets for weak phrasing and
// quantifiable achievements, and checks that required resume sections are
// present.
package quality

import (
	"strings"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// weakPhrases are vague or hedging phrasings that undercut a bullet. A
// bullet containing any of them (case-insensitively, as a substring) is
// flagged.
var weakPhrases = []string{
	"responsible for",
	"worked on",
	"helped",
	"assisted with",
	"participated in",
	"involved in",
	"familiar with",
	"duties included",
	"tasked with",
	"various",
}

// WeakBullets returns the bullets across all experience entries that contain
// a weak phrase. Output preserves input order and original casing; a bullet
// appearing twice in the input yields two findings.
func WeakBullets(entries []types.ExperienceEntry) []string {
	var findings []string
	for _, entry := range entries {
		for _, bullet := range entry.Bullets {
			lower := strings.ToLower(bullet)
			for _, phrase := range weakPhrases {
				if strings.Contains(lower, phrase) {
					findings = append(findings, bullet)
					break
				}
			}
		}
	}
	return findings
}
