package projects

// FallbackCards returns the static cards shown when the live listing fails.
// A fresh slice is returned on every call.
func FallbackCards() []Card {
	return []Card{
		{
			ID:           "project-fallback-1",
			URL:          "https://github.com/vinnych/Gemini-Mindmap-Generator",
			Icon:         "🤖",
			Name:         "Gemini Mindmap Generator",
			Description:  "Using Gemini AI, developed a brainstormer which generates mind maps from any idea.",
			Language:     "TypeScript",
			Color:        "#3178c6",
			ShowLanguage: true,
			Fallback:     true,
		},
		{
			ID:           "project-fallback-2",
			URL:          "https://github.com/vinnych/RandomPasswordGenerator",
			Icon:         "🔐",
			Name:         "Random Password Generator",
			Description:  "Generate strong, unique passwords with a single tap. Secure your digital life.",
			Language:     "JavaScript",
			Color:        "#f7df1e",
			ShowLanguage: true,
			Fallback:     true,
		},
		{
			ID:           "project-fallback-3",
			URL:          "https://github.com/vinnych/AI-interface",
			Icon:         "💡",
			Name:         "AI Interface",
			Description:  "An AI interface designed to deploy and interact with custom APIs seamlessly.",
			Language:     "JavaScript",
			Color:        "#f7df1e",
			ShowLanguage: true,
			Fallback:     true,
		},
	}
}
