package prompts

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

const defaultScenarioSystem = `<role>
You are a creative assistant for "proofs," a social habit-building app where users prove they've done a habit by taking a picture.
</role>

<task>
Generate EXACTLY 4 distinct scenario pairs for a 2-panel comic slideshow.
These will be shown in sequence, so the first one MUST be controversial/attention-grabbing to hook users.
</task>

<requirements>
<scenario_structure>
Each pair must consist of:
1. "success" scene: Character enjoying the results of a consistent habit
2. "work" scene: Same character performing the specific habit that led to that success
3. "top_text": Text for the top panel
4. "bottom_text": Text for the bottom panel (the habit/work message)
</scenario_structure>

<high_converting_hooks>
PROVEN HIGH-CONVERTING FIRST COMIC EXAMPLES:
- "everyone lies about their success" / "i document the truth"
- "your excuses are pathetic" / "my habits are powerful"
- "comfort kills dreams" / "discomfort builds them"
- "you talk, i do" / "you wish, i work"
- "you make excuses" / "i make progress"
- "you scroll, i build" / "you watch, i achieve"

OTHER SLIDES (less controversial but still engaging):
- "they said impossible" / "i said watch me"
- "overnight success took years" / "every single day"
- "talent is overrated" / "consistency is underrated"
- "results don't lie" / "neither do my habits"
</high_converting_hooks>

<constraints>
- Scenarios must be strictly habit-related and visually distinct
- All text should be lowercase
- Focus on habits that can be "proved" with photos
- The first slide must be impossible to scroll past
</constraints>
</requirements>`

const defaultScenarioRequest = `Generate 4 habit-based achievement scenario pairs for our app 'proofs', with the first one being attention-grabbing using the high-converting hook examples provided.`

const defaultSlideTemplate = `<instructions>
<format>
- Single image, exactly 1024x1536 pixels
- Vertically stacked 2-panel comic
- Panels MUST blend seamlessly with NO dividing line or border between them
- Artwork MUST extend to all four edges (full-bleed, no margins/padding)
</format>

<style_guide>
<consistency>CRITICAL: This comic MUST be visually identical in style to all other comics in the series. Use the EXACT same art style, character design, color palette, and rendering approach.</consistency>

<art_style>Vibrant, modern, high-fidelity cartoon style with 3D-like quality but clearly animated. Premium digital illustration quality.</art_style>

<characters>
- Expressive and appealing with well-defined features
- Realistic but cartoony proportions (similar to modern animated shorts)
- Character design MUST be IDENTICAL across both panels and across ALL comics in the series
- Same facial features, body proportions, and clothing style throughout
</characters>

<visual_treatment>
- Clean, subtle linework integrated into rendering for polished look
- Balanced, sophisticated color palette with rich but slightly desaturated colors
- Cinematic feel, avoid overly bright or neon colors
- Sophisticated shading with soft gradients, highlights, and shadows
- Dynamic lighting for depth and realism within cartoon style
</visual_treatment>

<text_formatting>
- Text overlaid directly on artwork in clean, legible, lowercase, sans-serif font
- NO shapes, boxes, cards, speech bubbles, or thought bubbles around text
- Text placed directly on the image surface
- CRITICAL: Text must be positioned at the BOTTOM of each panel, never at the top or middle
- Text should be large enough to read easily but not overwhelming
</text_formatting>
</style_guide>

<engagement>{{.Engagement}}</engagement>

<content>
<top_panel>
<scene>{{.Success}}</scene>
<text_position>Bottom of the top panel</text_position>
<text>{{.TopText}}</text>
</top_panel>

<bottom_panel>
<scene>Same character from top panel performing the underlying habit: {{.Work}}. Character could be taking a picture of their progress (reflecting 'proofs' app concept).</scene>
<text_position>Bottom of the bottom panel</text_position>
<text>{{.BottomText}}</text>
</bottom_panel>
</content>
</instructions>`

const (
	defaultHookMarker   = "This is the first slide and the only chance to stop the scroll. Push the top panel claim to its most provocative reading and make the overlay text impossible to ignore."
	defaultSubtleMarker = "Work one small, unexpected background detail into the top panel that rewards viewers who look twice. Keep it understated."
	defaultCleanMarker  = "Keep both panels clean and focused. No extra background elements beyond the described scenes."
)

type Prompts struct {
	System     SystemPrompts     `yaml:"system"`
	Scenario   ScenarioPrompts   `yaml:"scenario"`
	Slide      SlidePrompts      `yaml:"slide"`
	Engagement EngagementPrompts `yaml:"engagement"`
}

type SystemPrompts struct {
	Scenarios string `yaml:"scenarios"`
}

type ScenarioPrompts struct {
	Request string `yaml:"request"`
}

type SlidePrompts struct {
	Template string `yaml:"template"`
}

// EngagementPrompts maps slide positions to named markers. The table is
// configuration data, so the per-slide content policy can change without
// touching code.
type EngagementPrompts struct {
	Markers map[string]string `yaml:"markers"`
	Slides  map[int]string    `yaml:"slides"`
	Default string            `yaml:"default"`
}

// SlideParams carries one scenario pair plus its 1-based slide position.
type SlideParams struct {
	Success    string
	Work       string
	TopText    string
	BottomText string
	Position   int
}

type slideData struct {
	Success    string
	Work       string
	TopText    string
	BottomText string
	Engagement string
}

func Default() *Prompts {
	return &Prompts{
		System:   SystemPrompts{Scenarios: defaultScenarioSystem},
		Scenario: ScenarioPrompts{Request: defaultScenarioRequest},
		Slide:    SlidePrompts{Template: defaultSlideTemplate},
		Engagement: EngagementPrompts{
			Markers: map[string]string{
				"hook":   defaultHookMarker,
				"subtle": defaultSubtleMarker,
				"clean":  defaultCleanMarker,
			},
			Slides:  map[int]string{1: "hook", 3: "subtle"},
			Default: "clean",
		},
	}
}

// Load returns the built-in prompts, overlaid with prompts.yaml when present.
func Load() (*Prompts, error) {
	if _, err := os.Stat(defaultPromptsPath); err != nil {
		slog.Debug("No prompts.yaml found, using built-in prompts")
		return Default(), nil
	}
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	p := &Prompts{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	applyDefaults(p)
	return p, nil
}

func applyDefaults(p *Prompts) {
	base := Default()
	if p.System.Scenarios == "" {
		p.System.Scenarios = base.System.Scenarios
	}
	if p.Scenario.Request == "" {
		p.Scenario.Request = base.Scenario.Request
	}
	if p.Slide.Template == "" {
		p.Slide.Template = base.Slide.Template
	}
	if len(p.Engagement.Markers) == 0 {
		p.Engagement.Markers = base.Engagement.Markers
	}
	if len(p.Engagement.Slides) == 0 {
		p.Engagement.Slides = base.Engagement.Slides
	}
	if p.Engagement.Default == "" {
		p.Engagement.Default = base.Engagement.Default
	}
}

// ComposeSlide renders the slide template with the pair's fields embedded
// verbatim plus the engagement marker for the slide position. Identical
// params always produce identical output.
func (p *Prompts) ComposeSlide(params SlideParams) (string, error) {
	return render(p.Slide.Template, slideData{
		Success:    params.Success,
		Work:       params.Work,
		TopText:    params.TopText,
		BottomText: params.BottomText,
		Engagement: p.EngagementFor(params.Position),
	})
}

// EngagementFor resolves the marker text for a 1-based slide position,
// falling back to the default marker for positions not in the table.
func (p *Prompts) EngagementFor(position int) string {
	name, ok := p.Engagement.Slides[position]
	if !ok {
		name = p.Engagement.Default
	}
	marker, ok := p.Engagement.Markers[name]
	if !ok {
		return p.Engagement.Markers[p.Engagement.Default]
	}
	return marker
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
