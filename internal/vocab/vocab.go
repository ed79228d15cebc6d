// Package vocab holds the static skill vocabulary: the curated dictionary of
// recognized skills, the core-skill subset, the negative-keyword blocklist,
// and the alias table used for canonicalization. All tables are package-level
// constants loaded once at process start and treated as immutable.
package vocab

import (
	"regexp"
	"strings"
)

// skillDictionary maps lowercase skill tokens to their canonical display
// casing. Multi-word entries are matched as whole phrases.
var skillDictionary = map[string]string{
	// Languages
	"python":      "Python",
	"java":        "Java",
	"javascript":  "JavaScript",
	"typescript":  "TypeScript",
	"go":          "Go",
	"golang":      "Go",
	"rust":        "Rust",
	"c":           "C",
	"c++":         "C++",
	"c#":          "C#",
	"ruby":        "Ruby",
	"php":         "PHP",
	"swift":       "Swift",
	"kotlin":      "Kotlin",
	"scala":       "Scala",
	"r":           "R",
	"perl":        "Perl",
	"dart":        "Dart",
	"elixir":      "Elixir",
	"haskell":     "Haskell",
	"lua":         "Lua",
	"matlab":      "MATLAB",
	"objective-c": "Objective-C",
	"solidity":    "Solidity",
	"sql":         "SQL",
	"bash":        "Bash",
	"shell":       "Shell",

	// Frontend
	"react":        "React",
	"react native": "React Native",
	"angular":      "Angular",
	"vue":          "Vue.js",
	"vue.js":       "Vue.js",
	"svelte":       "Svelte",
	"next.js":      "Next.js",
	"nuxt":         "Nuxt",
	"html":         "HTML",
	"html5":        "HTML5",
	"css":          "CSS",
	"css3":         "CSS3",
	"sass":         "Sass",
	"tailwind":     "Tailwind",
	"tailwind css": "Tailwind CSS",
	"bootstrap":    "Bootstrap",
	"jquery":       "jQuery",
	"redux":        "Redux",
	"webpack":      "Webpack",
	"vite":         "Vite",

	// Backend
	"node.js":       "Node.js",
	"express":       "Express.js",
	"express.js":    "Express.js",
	"django":        "Django",
	"flask":         "Flask",
	"fastapi":       "FastAPI",
	"spring":        "Spring",
	"spring boot":   "Spring Boot",
	"rails":         "Rails",
	"ruby on rails": "Ruby on Rails",
	"laravel":       "Laravel",
	"gin":           "Gin",
	".net":          ".NET",
	"asp.net":       "ASP.NET",
	"graphql":       "GraphQL",
	"rest":          "REST",
	"rest api":      "REST API",
	"grpc":          "gRPC",
	"websocket":     "WebSocket",
	"microservices": "Microservices",

	// Databases
	"postgresql":    "PostgreSQL",
	"postgres":      "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"sqlite":        "SQLite",
	"cassandra":     "Cassandra",
	"dynamodb":      "DynamoDB",
	"elasticsearch": "Elasticsearch",
	"neo4j":         "Neo4j",
	"oracle":        "Oracle",
	"sql server":    "SQL Server",
	"mariadb":       "MariaDB",
	"firebase":      "Firebase",
	"supabase":      "Supabase",

	// Cloud & DevOps
	"aws":            "AWS",
	"azure":          "Azure",
	"gcp":            "GCP",
	"docker":         "Docker",
	"kubernetes":     "Kubernetes",
	"terraform":      "Terraform",
	"ansible":        "Ansible",
	"jenkins":        "Jenkins",
	"ci/cd":          "CI/CD",
	"ci":             "CI",
	"cd":             "CD",
	"git":            "Git",
	"github":         "GitHub",
	"gitlab":         "GitLab",
	"bitbucket":      "Bitbucket",
	"linux":          "Linux",
	"nginx":          "Nginx",
	"apache":         "Apache",
	"kafka":          "Kafka",
	"rabbitmq":       "RabbitMQ",
	"prometheus":     "Prometheus",
	"grafana":        "Grafana",
	"helm":           "Helm",
	"devops":         "DevOps",
	"serverless":     "Serverless",
	"lambda":         "Lambda",
	"cloudformation": "CloudFormation",

	// Data & ML
	"machine learning":     "Machine Learning",
	"deep learning":        "Deep Learning",
	"data science":         "Data Science",
	"data analysis":        "Data Analysis",
	"data engineering":     "Data Engineering",
	"nlp":                  "NLP",
	"computer vision":      "Computer Vision",
	"ai":                   "AI",
	"ml":                   "ML",
	"tensorflow":           "TensorFlow",
	"pytorch":              "PyTorch",
	"keras":                "Keras",
	"scikit-learn":         "Scikit-learn",
	"pandas":               "Pandas",
	"numpy":                "NumPy",
	"opencv":               "OpenCV",
	"spark":                "Spark",
	"hadoop":               "Hadoop",
	"airflow":              "Airflow",
	"tableau":              "Tableau",
	"power bi":             "Power BI",
	"jupyter":              "Jupyter",
	"statistics":           "Statistics",
	"etl":                  "ETL",
	"llm":                  "LLM",
	"generative ai":        "Generative AI",
	"prompt engineering":   "Prompt Engineering",
	"reinforcement learning": "Reinforcement Learning",

	// Mobile
	"android": "Android",
	"ios":     "iOS",
	"flutter": "Flutter",
	"xamarin": "Xamarin",

	// Blockchain
	"blockchain":      "Blockchain",
	"ethereum":        "Ethereum",
	"web3":            "Web3",
	"smart contracts": "Smart Contracts",

	// Practices & tools
	"agile":             "Agile",
	"scrum":             "Scrum",
	"kanban":            "Kanban",
	"tdd":               "TDD",
	"unit testing":      "Unit Testing",
	"selenium":          "Selenium",
	"cypress":           "Cypress",
	"jest":              "Jest",
	"pytest":            "Pytest",
	"jira":              "Jira",
	"figma":             "Figma",
	"ui/ux":             "UI/UX",
	"ui":                "UI",
	"ux":                "UX",
	"qa":                "QA",
	"api design":        "API Design",
	"system design":     "System Design",
	"design patterns":   "Design Patterns",
	"oop":               "OOP",
	"data structures":   "Data Structures",
	"algorithms":        "Algorithms",
	"distributed systems": "Distributed Systems",
	"security":          "Security",
	"networking":        "Networking",
	"oauth":             "OAuth",
	"jwt":               "JWT",
}

// coreSkills is the dictionary subset exempt from minimum-length filtering.
// These are legitimate skills that would otherwise be discarded as noise.
var coreSkills = map[string]struct{}{
	"ai": {}, "ml": {}, "go": {}, "c": {}, "r": {}, "qa": {},
	"ui": {}, "ux": {}, "ci": {}, "cd": {}, "c#": {}, "c++": {},
	"sql": {}, "aws": {}, "gcp": {}, "php": {}, "css": {}, "nlp": {},
	"etl": {}, "llm": {}, "tdd": {}, "ios": {}, "oop": {}, "git": {},
	"jwt": {}, "rest": {},
}

// compiledEntry pairs a dictionary entry with its precompiled word-boundary
// pattern for text scanning.
type compiledEntry struct {
	Canonical string
	Pattern   *regexp.Regexp
}

var compiledEntries []compiledEntry

func init() {
	compiledEntries = make([]compiledEntry, 0, len(skillDictionary))
	for lower, canonical := range skillDictionary {
		compiledEntries = append(compiledEntries, compiledEntry{
			Canonical: canonical,
			Pattern:   boundaryPattern(lower),
		})
	}
}

// boundaryPattern builds a case-insensitive whole-token pattern for a
// dictionary entry. \b misbehaves next to symbols like "+" or "#", so
// entries that start or end with a non-word character get explicit
// non-word-character anchors instead.
func boundaryPattern(entry string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(entry)
	lead := `\b`
	if !isWordChar(rune(entry[0])) {
		lead = `(?:^|[^\w])`
	}
	trail := `\b`
	if !isWordChar(rune(entry[len(entry)-1])) {
		trail = `(?:$|[^\w])`
	}
	return regexp.MustCompile(`(?i)` + lead + quoted + trail)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Canonical returns the canonical display casing for a lowercase skill
// token, if the token is in the dictionary.
func Canonical(lower string) (string, bool) {
	c, ok := skillDictionary[lower]
	return c, ok
}

// IsCore reports whether a lowercase token is in the core-skill subset.
func IsCore(lower string) bool {
	_, ok := coreSkills[lower]
	return ok
}

// Entries returns the compiled dictionary entries for text scanning.
// The returned slice must not be modified.
func Entries() []compiledEntry {
	return compiledEntries
}

// minContainLen is the minimum length for substring-containment matching.
// Entries below it (single letters, two-letter core skills) only ever
// match exactly; without this, "r" would claim every candidate.
const minContainLen = 3

// Match looks a candidate up against the dictionary: exact match first,
// then substring containment in either direction. When several entries
// contain (or are contained by) the candidate, the longest entry wins so
// that "mongodb" resolves to MongoDB rather than Go. Returns the canonical
// form of the matched entry.
func Match(lower string) (string, bool) {
	if c, ok := skillDictionary[lower]; ok {
		return c, true
	}
	if len(lower) < minContainLen {
		return "", false
	}
	var bestEntry, bestCanonical string
	for entry, canonical := range skillDictionary {
		if len(entry) < minContainLen {
			continue
		}
		if !strings.Contains(lower, entry) && !strings.Contains(entry, lower) {
			continue
		}
		if len(entry) > len(bestEntry) || (len(entry) == len(bestEntry) && entry < bestEntry) {
			bestEntry, bestCanonical = entry, canonical
		}
	}
	return bestCanonical, bestEntry != ""
}

// MatchBoundary extends Match with a word-boundary scan, for fallback
// candidates that embed a skill inside longer text.
func MatchBoundary(candidate string) (string, bool) {
	lower := strings.ToLower(candidate)
	if c, ok := Match(lower); ok {
		return c, true
	}
	for _, e := range compiledEntries {
		if e.Pattern.MatchString(candidate) {
			return e.Canonical, true
		}
	}
	return "", false
}
