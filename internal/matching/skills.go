package matching

import (
	"regexp"
	"strings"
)

// skillVocabulary is the curated list skills are extracted against. Matching
// is case-insensitive; output preserves the canonical casing below.
var skillVocabulary = []string{
	// Languages
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust", "PHP",
	"Ruby", "Swift", "Kotlin", "R", "Scala", "Dart", "Perl", "Bash", "Shell", "Groovy",
	// Frontend
	"React", "Vue", "Angular", "Next.js", "Nuxt.js", "Svelte", "HTML", "CSS",
	"Tailwind", "Redux", "GraphQL", "REST", "Bootstrap", "SASS", "LESS",
	"Webpack", "Vite", "jQuery", "Ember", "Backbone",
	// Backend
	"Node.js", "Express", "Django", "Flask", "FastAPI", "Spring Boot", "Spring",
	".NET", "ASP.NET", "Laravel", "Rails", "NestJS", "Fastify", "Gin", "Echo",
	"Hapi", "Koa",
	// Databases
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "DynamoDB",
	"Cassandra", "SQLite", "Oracle", "MSSQL", "MariaDB", "Firestore", "CouchDB",
	"Neo4j", "InfluxDB",
	// Cloud & DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "GitHub Actions", "CircleCI", "CI/CD", "Linux", "Nginx", "Apache",
	"Helm", "ArgoCD", "Prometheus", "Grafana", "ELK", "Datadog",
	// Data & AI / ML
	"Machine Learning", "TensorFlow", "PyTorch", "pandas", "NumPy", "Scikit-learn",
	"Data Science", "SQL", "Power BI", "Tableau", "Spark", "Hadoop",
	"Natural Language Processing", "NLP", "Computer Vision", "Deep Learning",
	"LLM", "OpenAI", "Langchain", "Airflow", "dbt", "Looker",
	// Tools & Practices
	"Git", "JIRA", "Figma", "Agile", "Scrum", "Microservices", "API",
	"Prisma", "Mongoose", "Stripe", "SendGrid", "Kafka", "RabbitMQ",
	"gRPC", "WebSocket", "OAuth", "JWT", "LDAP",
	// Mobile
	"React Native", "Flutter", "iOS", "Android", "Xamarin", "Ionic",
	// Testing
	"Jest", "Cypress", "Selenium", "Playwright", "Mocha", "JUnit",
	// Other popular
	"Shopify", "Salesforce", "SAP", "Power Automate",
}

type skillMatcher struct {
	canonical string
	// substring is the lowercased form for multi-word / punctuated skills
	// ("spring boot", "node.js", "c++") which cannot be whole-word matched.
	substring string
	// word matches single-token skills on word boundaries.
	word *regexp.Regexp
}

var skillMatchers = buildSkillMatchers()

func buildSkillMatchers() []skillMatcher {
	matchers := make([]skillMatcher, 0, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		lower := strings.ToLower(skill)
		if strings.ContainsAny(lower, " .+#/") {
			matchers = append(matchers, skillMatcher{canonical: skill, substring: lower})
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		matchers = append(matchers, skillMatcher{canonical: skill, word: re})
	}
	return matchers
}

// ExtractSkills maps free text to the set of vocabulary skills it mentions.
// Deterministic: results follow vocabulary order, no duplicates.
func ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, m := range skillMatchers {
		if m.word != nil {
			if m.word.MatchString(text) {
				found = append(found, m.canonical)
			}
			continue
		}
		if strings.Contains(lower, m.substring) {
			found = append(found, m.canonical)
		}
	}
	return found
}
