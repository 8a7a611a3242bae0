package refinement

import (
	"fmt"
	"strings"
)

// BuildPrompt selects the fixed prompt template for a refinement request.
// sourceText non-empty means the vision path; within it, a secondary phrase
// test on the original query picks the concise-object, text-reading, or
// general-scene template. Each template caps the reply as a word budget and
// forbids mentioning visual impairment.
func BuildPrompt(sourceText, originalQuery string, queryType QueryType) string {
	if strings.TrimSpace(sourceText) != "" {
		return buildVisionPrompt(sourceText, originalQuery)
	}
	return buildConversationalPrompt(originalQuery, queryType)
}

func buildVisionPrompt(sourceText, originalQuery string) string {
	lowerQuery := strings.ToLower(originalQuery)

	if strings.Contains(lowerQuery, "holding") || strings.Contains(lowerQuery, "hand") {
		return fmt.Sprintf(`Original user query: %q
Raw image analysis: %q

The user is asking about an object they're holding. Focus on:
1. Identifying the object clearly and concisely
2. Mentioning key details about color, size, and distinctive features
3. Being very brief (30 words or less)
4. Using a friendly, conversational tone
5. Being direct and helpful`, originalQuery, sourceText)
	}

	if strings.Contains(lowerQuery, "read") || strings.Contains(lowerQuery, "say") || strings.Contains(lowerQuery, "text") {
		return fmt.Sprintf(`Original user query: %q
Raw image analysis: %q

The user wants you to read text in the image. Focus on:
1. Sharing exactly what text is visible, clearly and accurately
2. Being direct and to the point
3. Organizing text logically if there are multiple sections
4. Using a friendly, conversational tone
5. Only mention text you're confident about`, originalQuery, sourceText)
	}

	return fmt.Sprintf(`Original user query: %q
Raw image analysis: %q

Instructions for your response:
1. Be concise and focused - keep your response under 40 words
2. Use a friendly, conversational tone as if you're a helpful friend
3. Highlight the most relevant details from the image analysis
4. Mention potential hazards or important spatial information if present
5. Answer the user's question directly and clearly
6. Don't mention visual impairment, blindness, or that you're describing an image`, originalQuery, sourceText)
}

func buildConversationalPrompt(originalQuery string, queryType QueryType) string {
	switch queryType {
	case QueryTypeAssistantInfo:
		return fmt.Sprintf(`The user asked: %q

Provide a brief introduction about the SeeForMe assistant. Explain that you're a visual assistant that can describe what's around them, identify objects, read text, and help navigate spaces. Keep it friendly, brief (under 40 words), and conversational.`, originalQuery)

	case QueryTypeUsageHelp:
		return fmt.Sprintf(`The user asked: %q

Provide a simple instruction on how to use the app. Tell them to press the Listen button and then speak their question about what they want to know about their surroundings. Keep it friendly, brief (under 40 words), and straightforward.`, originalQuery)

	case QueryTypeGratitude:
		return fmt.Sprintf(`The user said: %q

Respond warmly to their thanks with a brief, friendly acknowledgment. Offer to continue helping if needed. Keep it under 20 words and conversational.`, originalQuery)

	case QueryTypeGreeting:
		return fmt.Sprintf(`The user said: %q

Respond with a warm, brief greeting. Mention you're their visual assistant and ready to help describe what's around them. Keep it under 20 words and friendly.`, originalQuery)
	}

	return fmt.Sprintf(`The user asked: %q

Please respond to this query:
1. Be brief and direct - keep your response under 30 words
2. Use a friendly, conversational tone
3. If they're asking about visual information, gently suggest they ask what you can see or what's in front of them
4. Be helpful and positive`, originalQuery)
}
