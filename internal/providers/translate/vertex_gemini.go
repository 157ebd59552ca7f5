package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"
)

// VertexGemini translates by prompting a Gemini model and concatenating the stream.
type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	m.SetTemperature(0)
	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Name() string { return "vertex" }

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Translate(ctx context.Context, text, source, target string) (*Result, error) {
	var sb strings.Builder
	it := v.model.GenerateContentStream(ctx, vertexgenai.Text(Prompt(text, source, target)))
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vertex stream: %w", err)
		}

		sb.WriteString(firstCandidateText(resp))
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return nil, errors.New("no translation returned from Vertex")
	}
	return &Result{Text: out, DetectedSourceLanguage: source}, nil
}

// firstCandidateText reads only the first candidate so multi-candidate
// responses never interleave.
func firstCandidateText(resp *vertexgenai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// Prompt builds the translation instruction sent to the model.
func Prompt(text, source, target string) string {
	from := source
	if from == "" {
		from = "the detected language"
	}
	return "Translate the following text from " + from + " to " + target +
		". Preserve tone and punctuation. Reply with the translation only.\n\n" + text
}
