package tools

// All tool definitions as a single source of truth
var (
	GetChuckJoke = ToolDef{
		Name:        "get-chuck-joke",
		Description: ChuckJokePrompt,
		Title:       "Chuck Norris Joke",
		Output:      "random joke text",
		Params:      []ParamDef{},
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
	}

	GetChuckJokeByCategory = ToolDef{
		Name:        "get-chuck-joke-by-category",
		Description: ChuckJokeByCategoryPrompt,
		Title:       "Chuck Norris Joke by Category",
		Output:      "joke text filtered by category",
		Params: []ParamDef{
			{
				Name:        "category",
				Type:        ParamTypeString,
				Description: "Category of the Chuck Norris joke",
				Required:    true,
			},
		},
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
	}

	GetChuckCategories = ToolDef{
		Name:        "get-chuck-categories",
		Description: ChuckCategoriesPrompt,
		Title:       "Chuck Norris Joke Categories",
		Output:      "comma-joined category list",
		Params:      []ParamDef{},
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
	}

	GetDadJoke = ToolDef{
		Name:        "get-dad-joke",
		Description: DadJokePrompt,
		Title:       "Dad Joke",
		Output:      "random dad joke text",
		Params:      []ParamDef{},
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
	}
)

// AllTools returns every tool definition in registration order.
func AllTools() []ToolDef {
	return []ToolDef{
		GetChuckJoke,
		GetChuckJokeByCategory,
		GetChuckCategories,
		GetDadJoke,
	}
}
