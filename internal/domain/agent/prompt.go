package agent

import "fmt"

const systemMessage = "You are an expert interior designer. Always respond with only a valid JSON array of furniture indices."

const selectionPromptTemplate = `You are an expert interior designer helping a client furnish their space. 

CLIENT'S REQUIREMENTS: "%s"

Available furniture catalog (%d pieces):
%s

As an expert designer, select 8-12 pieces that would work perfectly together for this client's space.
Consider style cohesion, functional needs, space requirements, and aesthetic harmony.

Return ONLY a JSON array of indices: [0,1,2,4,5,8,9,13]`

// BuildPrompt embeds the requirement text verbatim next to the catalog listing.
func BuildPrompt(housePrompt string, itemCount int, listing string) string {
	return fmt.Sprintf(selectionPromptTemplate, housePrompt, itemCount, listing)
}
