// Package prompts builds generation request payloads from hero state.
// All functions are pure: no I/O, deterministic given their inputs.
package prompts

import (
	"fmt"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/ports"
)

const profileSystemPrompt = `You are a superhero creator. Invent a brand new, original superhero.

Respond with a single JSON object containing exactly these string fields:
- name: The hero's alias
- superpowers: Their powers and abilities
- hometown: Where they are from
- backstory: How they became a hero
- personality_traits: What they are like as a person
- appearance: What they look like, including costume

Return ONLY the JSON object, no other text. Every field must be non-empty.`

const chapterSystemPrompt = `You are a comic book writer producing a serialized superhero story.
Write the next chapter of the hero's story. Stay consistent with the hero's
profile and with everything that has happened so far. Write vivid prose,
roughly 400-600 words, and end on a hook for the next chapter.`

const summarySystemPrompt = `You are an editor keeping series notes. Summarize the given chapter in
3-5 sentences, keeping every detail a future writer would need for
continuity: characters introduced, locations, open threats, and how the
chapter ended. Respond with the summary only.`

// ProfileMessages builds the structured-generation request for a new hero.
func ProfileMessages() []ports.Message {
	return []ports.Message{
		{Role: ports.RoleSystem, Content: profileSystemPrompt},
		{Role: ports.RoleUser, Content: "Create a brand new superhero."},
	}
}

// PortraitDescription builds the image-description string for a hero portrait.
func PortraitDescription(hero *entities.Hero) string {
	return fmt.Sprintf(
		"Comic book style portrait of the superhero %s. Appearance: %s. Powers: %s. Dramatic lighting, full color, no text.",
		hero.Name, hero.Appearance, hero.Superpowers)
}

// ChapterMessages builds the continuation request for the next chapter,
// embedding the hero's profile and the accumulated story-so-far text. An
// empty log yields an empty story-so-far section.
func ChapterMessages(hero *entities.Hero, storySoFar string) []ports.Message {
	user := fmt.Sprintf(`Hero profile:
Name: %s
Superpowers: %s
Hometown: %s
Backstory: %s
Personality: %s
Appearance: %s

The story so far:
%s

Write the next chapter.`,
		hero.Name, hero.Superpowers, hero.Hometown, hero.Backstory,
		hero.PersonalityTraits, hero.Appearance, storySoFar)

	return []ports.Message{
		{Role: ports.RoleSystem, Content: chapterSystemPrompt},
		{Role: ports.RoleUser, Content: user},
	}
}

// SummaryMessages builds the summarization request for a finished chapter.
func SummaryMessages(chapter string) []ports.Message {
	return []ports.Message{
		{Role: ports.RoleSystem, Content: summarySystemPrompt},
		{Role: ports.RoleUser, Content: chapter},
	}
}
