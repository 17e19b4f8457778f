package retrieval

import (
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// Entry is one guitar catalog row. The searchable text is the full
// description enriched with the structured columns so keyword queries can hit
// either.
type Entry struct {
	bun.BaseModel `bun:"table:guitar_catalog,alias:gc"`

	ID              int64  `bun:"id,pk,autoincrement"`
	Brand           string `bun:"brand"`
	Model           string `bun:"model"`
	Category        string `bun:"category"`
	PriceUSD        int    `bun:"price_usd"`
	MSRPUSD         int    `bun:"msrp_usd"`
	SoundProfile    string `bun:"sound_profile"`
	BestFor         string `bun:"best_for"`
	GenreStrength   string `bun:"genre_strength"`
	SkillLevel      string `bun:"skill_level"`
	FeelProfile     string `bun:"feel_profile"`
	RecommendedUse  string `bun:"recommended_use"`
	FullDescription string `bun:"full_description"`
}

// Text renders the entry as a single searchable paragraph.
func (e Entry) Text() string {
	base := strings.TrimSpace(e.FullDescription)

	extras := make([]string, 0, 12)
	appendExtra := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			extras = append(extras, fmt.Sprintf("%s: %s", label, value))
		}
	}

	if e.PriceUSD > 0 {
		extras = append(extras, fmt.Sprintf("Price Usd: %d", e.PriceUSD))
	}
	if e.MSRPUSD > 0 {
		extras = append(extras, fmt.Sprintf("Msrp Usd: %d", e.MSRPUSD))
	}
	appendExtra("Brand", e.Brand)
	appendExtra("Model", e.Model)
	appendExtra("Category", e.Category)
	appendExtra("Sound Profile", e.SoundProfile)
	appendExtra("Best For", e.BestFor)
	appendExtra("Genre Strength", e.GenreStrength)
	appendExtra("Skill Level", e.SkillLevel)
	appendExtra("Feel Profile", e.FeelProfile)
	appendExtra("Recommended Use", e.RecommendedUse)

	if base == "" {
		return strings.Join(extras, " | ")
	}
	if len(extras) == 0 {
		return base
	}
	return base + "\n" + strings.Join(extras, " | ")
}
