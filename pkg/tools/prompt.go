package tools

const (
	ServerPrompt = `This MCP server tells jokes. It fetches them live from api.chucknorris.io and icanhazdadjoke.com.

## Tool Selection

- **get-chuck-joke**: a random Chuck Norris joke
- **get-chuck-categories**: the categories Chuck Norris jokes are filed under
- **get-chuck-joke-by-category**: a random Chuck Norris joke from one category
- **get-dad-joke**: a random dad joke

## Rules

1. If the user asks for a Chuck Norris joke on a topic, call get-chuck-categories first and pick the closest category.
2. Pass category names exactly as get-chuck-categories returns them (lowercase, e.g. "dev").
3. Jokes are random. Calling a tool twice is expected to return different text.
4. Return the joke text as is. Do not invent jokes when a tool fails; tell the user the provider is unavailable.`

	ChuckJokePrompt = "Get a random Chuck Norris joke"

	ChuckJokeByCategoryPrompt = `Get a random Chuck Norris joke by category.

Use get-chuck-categories to discover valid categories. Unknown categories are
rejected by the provider.`

	ChuckCategoriesPrompt = "List Chuck Norris joke categories. Returns a comma-separated list."

	DadJokePrompt = "Get a random dad joke"
)
