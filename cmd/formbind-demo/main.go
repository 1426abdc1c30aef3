package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/decoration"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path (optional)")
	component := flag.String("component", "Trip", "component schema holding the form fields")
	variant := flag.String("theme", "", `theme variant for prompt decoration ("dark" or empty)`)
	first := flag.String("first", time.Now().Format(accessor.DateLayout), "first selectable date")
	last := flag.String("last", "", "last selectable date (defaults to one year after first)")
	flag.Parse()

	ctx := context.Background()
	driver := prompt.NewSurveyDriver()
	deco := promptDecoration(*variant)

	fields, err := loadFields(ctx, *source, *component)
	if err != nil {
		log.Fatalf("load fields: %v", err)
	}

	window, err := selectableWindow(*first, *last)
	if err != nil {
		log.Fatalf("selectable window: %v", err)
	}

	registry := widgets.NewRegistry()
	group := forms.NewGroup()
	var summaries []func()

	for _, field := range fields {
		widgetName, ok := registry.Resolve(field)
		if !ok {
			log.Printf("no widget for field %q, skipping", field.Name)
			continue
		}

		switch widgetName {
		case widgets.WidgetMultiSelect:
			control := forms.NewControl([]string{},
				forms.WithValidators(schema.SliceValidators(field)...))
			group.MustAdd(field.Name, control)

			dialog, err := widgets.NewMultiSelect(widgets.MultiSelectConfig{
				Spec:        field,
				Group:       group,
				ControlName: field.Name,
				Driver:      driver,
				Decoration:  deco,
			})
			if err != nil {
				log.Fatalf("build %s: %v", field.Name, err)
			}
			if _, err := dialog.Open(ctx); err != nil {
				log.Fatalf("%s: %v", field.Name, err)
			}
			summaries = append(summaries, func() {
				fmt.Printf("%s: %v\n", field.Name, control.Value())
			})

		case widgets.WidgetDateRange:
			control := forms.NewControl[*accessor.DateRange](nil)
			group.MustAdd(field.Name, control)

			picker, err := widgets.NewDateRange(widgets.DateRangeConfig{
				Spec:        field,
				Group:       group,
				ControlName: field.Name,
				First:       window.first,
				Last:        window.last,
				Driver:      driver,
				Decoration:  deco,
			})
			if err != nil {
				log.Fatalf("build %s: %v", field.Name, err)
			}
			if _, err := picker.Open(ctx); err != nil {
				log.Fatalf("%s: %v", field.Name, err)
			}
			summaries = append(summaries, func() {
				if rng := control.Value(); rng != nil {
					fmt.Printf("%s: %s to %s\n", field.Name,
						rng.Start.Format(accessor.DateLayout),
						rng.End.Format(accessor.DateLayout))
					return
				}
				fmt.Printf("%s: none\n", field.Name)
			})

		default:
			log.Printf("widget %q has no interactive flow here, skipping %q", widgetName, field.Name)
		}
	}

	for _, summary := range summaries {
		summary()
	}
	fmt.Printf("form valid: %v\n", group.Valid())
}

// promptDecoration resolves decoration from the built-in demo theme. An
// empty variant keeps the plain defaults.
func promptDecoration(variant string) decoration.Defaults {
	if variant == "" {
		return decoration.Base()
	}
	return decoration.FromSelection(&theme.Selection{
		Theme:    "formbind",
		Variant:  variant,
		Manifest: demoManifest(),
	})
}

func demoManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "formbind",
		Version: "1.0.0",
		Tokens: map[string]string{
			decoration.TokenPromptPrefix:   "? ",
			decoration.TokenRequiredSuffix: " (required)",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					decoration.TokenPromptPrefix: "> ",
					decoration.TokenErrorPrefix:  "!! ",
				},
			},
		},
	}
}

type window struct {
	first time.Time
	last  time.Time
}

func selectableWindow(first, last string) (window, error) {
	start, err := time.Parse(accessor.DateLayout, first)
	if err != nil {
		return window{}, fmt.Errorf("parse first date: %w", err)
	}
	end := start.AddDate(1, 0, 0)
	if last != "" {
		end, err = time.Parse(accessor.DateLayout, last)
		if err != nil {
			return window{}, fmt.Errorf("parse last date: %w", err)
		}
	}
	return window{first: start, last: end}, nil
}

// loadFields reads fields from an OpenAPI document when a source is given,
// otherwise falls back to a built-in pair of demo fields.
func loadFields(ctx context.Context, source, component string) ([]model.FieldSpec, error) {
	if source == "" {
		return demoFields(), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	doc, err := schema.LoadDocument(ctx, data)
	if err != nil {
		return nil, err
	}
	return schema.ComponentFields(doc, component)
}

func demoFields() []model.FieldSpec {
	return []model.FieldSpec{
		{
			Name:     "regions",
			Kind:     model.FieldKindArray,
			Label:    "Regions",
			Required: true,
			Help:     "Pick every region the trip touches.",
			Options: []model.Option{
				{Value: "north_america", Label: "North America"},
				{Value: "south_america", Label: "South America"},
				{Value: "western_europe", Label: "Western Europe"},
				{Value: "east_asia", Label: "East Asia"},
			},
			Validations: []model.ValidationRule{
				{Kind: model.ValidationRuleRequired},
				{Kind: model.ValidationRuleMinItems, Params: map[string]string{"value": "1"}},
			},
		},
		{
			Name:   "travel_window",
			Kind:   model.FieldKindString,
			Format: "date-range",
			Label:  "Travel Window",
			Help:   "Inclusive start and end dates.",
		},
	}
}
