package view

import (
	"github.com/phrazzld/launchpad/internal/landing"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// DefaultActionPath is where call-to-action forms submit.
const DefaultActionPath = "/start"

// Props is everything the landing page needs to render.
type Props struct {
	Hero       landing.Hero
	Features   []landing.Feature
	ActionPath string
}

// DefaultProps returns the landing page content with the default action path.
func DefaultProps() Props {
	return Props{
		Hero:       landing.DefaultHero(),
		Features:   landing.Features(),
		ActionPath: DefaultActionPath,
	}
}

// Page builds the complete landing page document.
func Page(p Props) g.Node {
	if p.ActionPath == "" {
		p.ActionPath = DefaultActionPath
	}

	return c.HTML5(c.HTML5Props{
		Title:       "Launchpad - " + p.Hero.Tagline,
		Description: p.Hero.Subtitle,
		Language:    "en",
		Head: []g.Node{
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), Defer()),
		},
		Body: []g.Node{
			Main(
				Class("min-h-screen bg-gradient-to-br from-indigo-50 to-blue-100 flex flex-col"),
				HeroSection(p.Hero, p.ActionPath),
				FeatureGrid(p.Features, p.ActionPath),
			),
		},
	})
}

// HeroSection renders the headline block and its call-to-action button.
func HeroSection(h landing.Hero, actionPath string) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-6 py-20 text-center"),
		ID("hero"),
		H1(
			Class("text-5xl font-extrabold text-gray-900 sm:text-6xl md:text-7xl"),
			Span(
				Class("block bg-clip-text text-transparent bg-gradient-to-r from-indigo-500 to-blue-600"),
				g.Text(h.Headline),
			),
			Span(Class("block text-indigo-700"), g.Text(h.Tagline)),
		),
		P(
			Class("mt-5 max-w-2xl mx-auto text-lg text-gray-600 sm:text-xl"),
			g.Text(h.Subtitle),
		),
		Div(
			Class("mt-10 flex justify-center"),
			ctaForm(actionPath, "hero",
				Button(
					Type("submit"),
					Class("px-10 py-5 font-medium text-xl rounded-lg text-white bg-indigo-600 hover:bg-indigo-700 shadow-lg transition-all duration-300"),
					g.Text(h.ButtonLabel),
				),
			),
		),
	)
}

// FeatureGrid renders one card per feature, in the order given.
func FeatureGrid(features []landing.Feature, actionPath string) g.Node {
	return Div(
		Class("py-16"),
		ID("features"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid grid-cols-1 gap-8 md:grid-cols-2 lg:grid-cols-4"),
				g.Group(g.Map(features, func(f landing.Feature) g.Node {
					return FeatureCard(f, actionPath)
				})),
			),
		),
	)
}

// FeatureCard renders a single clickable feature card.
func FeatureCard(f landing.Feature, actionPath string) g.Node {
	return ctaForm(actionPath, "feature:"+f.Icon.String(),
		Button(
			Type("submit"),
			Class("relative group flex flex-col items-center w-full h-full p-6 bg-white rounded-xl shadow-lg border border-gray-200 hover:border-indigo-500 transition-all duration-300 hover:shadow-2xl"),
			g.Attr("data-feature", f.Icon.String()),
			Span(
				Class("p-3 rounded-full bg-indigo-50 group-hover:bg-indigo-100"),
				Span(
					Class("iconify h-12 w-12 text-indigo-600"),
					g.Attr("data-icon", "lucide:"+f.Icon.String()),
					g.Attr("aria-hidden", "true"),
				),
			),
			H3(Class("mt-4 text-xl font-bold text-gray-900 group-hover:text-indigo-800"), g.Text(f.Title)),
			P(Class("mt-2 text-gray-600 text-center"), g.Text(f.Description)),
		),
	)
}

// ctaForm wraps a control in a form that submits to the shared action.
// source names the control that was activated, for logging only.
func ctaForm(actionPath, source string, control g.Node) g.Node {
	return Form(
		Method("post"),
		Action(actionPath),
		Class("contents"),
		Input(Type("hidden"), Name("source"), Value(source)),
		control,
	)
}
