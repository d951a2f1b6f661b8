package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
	"hrtoolbox/internal/models"
	"hrtoolbox/internal/services"
)

const defaultModel = "gemini-3-flash-preview"

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiNamer suggests team names with Google's Gemini API using
// structured JSON output.
type GeminiNamer struct {
	models   contentGenerator
	model    string
	language string
}

// NewGeminiNamer creates a GeminiNamer for the given API key.
// language is the natural language the names and mottos are written in.
func NewGeminiNamer(ctx context.Context, apiKey, model, language string) (*GeminiNamer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGeminiNamer(client.Models, model, language), nil
}

func newGeminiNamer(gen contentGenerator, model, language string) *GeminiNamer {
	if model == "" {
		model = defaultModel
	}
	if language == "" {
		language = "English"
	}
	return &GeminiNamer{models: gen, model: model, language: language}
}

// SuggestNames implements services.GroupNamer.
func (g *GeminiNamer) SuggestNames(ctx context.Context, req services.NamingRequest) ([]models.TeamName, error) {
	prompt, err := buildPrompt(req, g.language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNamingService, err)
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %w", models.ErrNamingService, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", models.ErrNamingService)
	}

	return ParseTeamNames(resp.Text())
}

// Name returns the backend name.
func (g *GeminiNamer) Name() string {
	return fmt.Sprintf("genai:%s", g.model)
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"groups": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"index":    {Type: genai.TypeInteger},
					"teamName": {Type: genai.TypeString},
					"motto":    {Type: genai.TypeString},
				},
				Required: []string{"index", "teamName", "motto"},
			},
		},
	},
	Required: []string{"groups"},
}

type promptGroup struct {
	Index   int      `json:"index"`
	Members []string `json:"members"`
}

func buildPrompt(req services.NamingRequest, language string) (string, error) {
	groups := make([]promptGroup, len(req.MemberNames))
	for i, members := range req.MemberNames {
		groups[i] = promptGroup{Index: i, Members: members}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return "", fmt.Errorf("encode groups: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I have formed %d teams for a company activity.\n", req.GroupCount)
	fmt.Fprintf(&b, "Here are the members of each team: %s.\n\n", data)
	b.WriteString("Please generate a creative, fun and professional team name and a short motto for each team.\n")
	fmt.Fprintf(&b, "Write every name and motto in %s.\n", language)
	b.WriteString("Make the names diverse, e.g. animals, space, superheroes or positive abstract concepts.\n")
	b.WriteString("Refer to each team by its index.")
	return b.String(), nil
}

type teamNamesPayload struct {
	Groups *[]struct {
		Index    *int    `json:"index"`
		TeamName *string `json:"teamName"`
		Motto    *string `json:"motto"`
	} `json:"groups"`
}

// ParseTeamNames decodes a {"groups":[{index, teamName, motto}]} document.
// A missing field anywhere fails the whole document.
func ParseTeamNames(text string) ([]models.TeamName, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: no response from model", models.ErrNamingService)
	}

	var payload teamNamesPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", models.ErrNamingService, err)
	}
	if payload.Groups == nil {
		return nil, fmt.Errorf("%w: response has no groups", models.ErrNamingService)
	}

	names := make([]models.TeamName, 0, len(*payload.Groups))
	for i, g := range *payload.Groups {
		if g.Index == nil || g.TeamName == nil || g.Motto == nil {
			return nil, fmt.Errorf("%w: entry %d is missing a required field", models.ErrNamingService, i)
		}
		names = append(names, models.TeamName{
			Index:    *g.Index,
			TeamName: strings.TrimSpace(*g.TeamName),
			Motto:    strings.TrimSpace(*g.Motto),
		})
	}
	return names, nil
}

var _ services.GroupNamer = (*GeminiNamer)(nil)
