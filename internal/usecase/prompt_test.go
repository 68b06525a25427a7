package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("embeds complaint verbatim", func(t *testing.T) {
		prompt := BuildPrompt(`He said "give me your phone" and ran`)

		assert.Contains(t, prompt, `Analyze the following complaint: "He said "give me your phone" and ran"`)
		assert.Contains(t, prompt, "AI dispatcher for a Philippine Barangay")
	})

	t.Run("lists both taxonomies", func(t *testing.T) {
		prompt := BuildPrompt("noise")

		assert.Contains(t, prompt, "[Theft & Robbery, Physical Injury, Fire & Disaster, Medical Emergency, VAWC, Public Disturbance, General Incident]")
		assert.Contains(t, prompt, "[Critical, High, Medium, Low]")
	})

	t.Run("empty complaint", func(t *testing.T) {
		prompt := BuildPrompt("")

		assert.Contains(t, prompt, `complaint: ""`)
	})

	t.Run("format verbs are not interpreted", func(t *testing.T) {
		prompt := BuildPrompt("100%s sure %d")

		assert.Contains(t, prompt, "100%s sure %d")
		assert.False(t, strings.Contains(prompt, "%!"))
	})
}
