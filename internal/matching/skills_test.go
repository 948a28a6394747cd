package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchdb-jobs-service/internal/matching"
)

func TestExtractSkills(t *testing.T) {
	t.Run("Should return nothing for empty text", func(t *testing.T) {
		assert.Nil(t, matching.ExtractSkills(""))
		assert.Nil(t, matching.ExtractSkills("   \n\t"))
	})

	t.Run("Should find single-token skills on word boundaries", func(t *testing.T) {
		got := matching.ExtractSkills("Built services in Go with Redis caching and Kafka queues.")
		assert.Contains(t, got, "Go")
		assert.Contains(t, got, "Redis")
		assert.Contains(t, got, "Kafka")
	})

	t.Run("Should not match inside other words", func(t *testing.T) {
		got := matching.ExtractSkills("Our cargo pipeline predates the rewrite.")
		assert.NotContains(t, got, "Go")
		assert.NotContains(t, got, "R")
	})

	t.Run("Should find punctuated and multi-word skills", func(t *testing.T) {
		got := matching.ExtractSkills("Senior C++ engineer, later Node.js and Spring Boot backends.")
		assert.Contains(t, got, "C++")
		assert.Contains(t, got, "Node.js")
		assert.Contains(t, got, "Spring Boot")
	})

	t.Run("Should match case-insensitively and keep canonical casing", func(t *testing.T) {
		got := matching.ExtractSkills("experience with POSTGRESQL and docker")
		assert.Contains(t, got, "PostgreSQL")
		assert.Contains(t, got, "Docker")
	})

	t.Run("Should return skills in vocabulary order without duplicates", func(t *testing.T) {
		text := "Docker then Python then Docker again then Python"
		got := matching.ExtractSkills(text)
		assert.Equal(t, []string{"Python", "Docker"}, got)
	})
}
