package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	openrouterx "github.com/tanpawarit/guitar-shop-agents/pkg/openrouter"
)

// Config holds the shared generation backend settings plus per-responder
// overrides. The negotiation responder runs hotter than the others so pricing
// banter stays creative.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"4096"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"60s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	InformationModel          string  `envconfig:"INFORMATION_MODEL" split_words:"true"`
	RecommendationModel       string  `envconfig:"RECOMMENDATION_MODEL" split_words:"true"`
	NegotiationModel          string  `envconfig:"NEGOTIATION_MODEL" split_words:"true"`
	InformationTemperature    float32 `envconfig:"INFORMATION_TEMPERATURE" split_words:"true" default:"-1"`
	RecommendationTemperature float32 `envconfig:"RECOMMENDATION_TEMPERATURE" split_words:"true" default:"-1"`
	NegotiationTemperature    float32 `envconfig:"NEGOTIATION_TEMPERATURE" split_words:"true" default:"0.8"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the effective model settings for one responder.
func (c Config) OpenRouterFor(agentType contractx.AgentType) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeInformation:
		if v := strings.TrimSpace(c.InformationModel); v != "" {
			modelName = v
		}
		if c.InformationTemperature >= 0 {
			temp = c.InformationTemperature
		}
	case contractx.AgentTypeRecommendation:
		if v := strings.TrimSpace(c.RecommendationModel); v != "" {
			modelName = v
		}
		if c.RecommendationTemperature >= 0 {
			temp = c.RecommendationTemperature
		}
	case contractx.AgentTypeNegotiation:
		if v := strings.TrimSpace(c.NegotiationModel); v != "" {
			modelName = v
		}
		if c.NegotiationTemperature >= 0 {
			temp = c.NegotiationTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
