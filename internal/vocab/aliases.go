package vocab

// aliases maps a lowercase normalized-form key to the canonical display
// string. Every value matches the skill dictionary's canonical spelling, so
// normalization and dictionary extraction agree on casing.
var aliases = map[string]string{
	// Spelling variants
	"golang":      "Go",
	"go lang":     "Go",
	"js":          "JavaScript",
	"javascript":  "JavaScript",
	"ts":          "TypeScript",
	"typescript":  "TypeScript",
	"py":          "Python",
	"nodejs":      "Node.js",
	"node":        "Node.js",
	"node.js":     "Node.js",
	"reactjs":     "React",
	"react.js":    "React",
	"vuejs":       "Vue.js",
	"vue":         "Vue.js",
	"vue.js":      "Vue.js",
	"nextjs":      "Next.js",
	"next.js":     "Next.js",
	"expressjs":   "Express.js",
	"express":     "Express.js",
	"express.js":  "Express.js",
	"k8s":         "Kubernetes",
	"kube":        "Kubernetes",
	"postgres":    "PostgreSQL",
	"postgresql":  "PostgreSQL",
	"psql":        "PostgreSQL",
	"mongo":       "MongoDB",
	"mongodb":     "MongoDB",
	"mysql":       "MySQL",
	"sqlite":      "SQLite",
	"cpp":         "C++",
	"c plus plus": "C++",
	"csharp":      "C#",
	"c sharp":     "C#",
	"dotnet":      ".NET",
	".net":        ".NET",
	"asp.net":     "ASP.NET",
	"tf":          "TensorFlow",
	"tensorflow":  "TensorFlow",
	"pytorch":     "PyTorch",
	"sklearn":     "Scikit-learn",
	"scikit":      "Scikit-learn",
	"scikit-learn": "Scikit-learn",
	"numpy":       "NumPy",
	"opencv":      "OpenCV",
	"fastapi":     "FastAPI",
	"graphql":     "GraphQL",
	"grpc":        "gRPC",
	"websocket":   "WebSocket",
	"jquery":      "jQuery",
	"matlab":      "MATLAB",

	// Acronyms and initialisms
	"aws":                 "AWS",
	"amazon web services": "AWS",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"google cloud platform": "GCP",
	"sql":     "SQL",
	"nosql":   "NoSQL",
	"html":    "HTML",
	"html5":   "HTML5",
	"css":     "CSS",
	"css3":    "CSS3",
	"php":     "PHP",
	"ai":      "AI",
	"ml":      "ML",
	"nlp":     "NLP",
	"llm":     "LLM",
	"etl":     "ETL",
	"tdd":     "TDD",
	"oop":     "OOP",
	"qa":      "QA",
	"ui":      "UI",
	"ux":      "UX",
	"ui/ux":   "UI/UX",
	"ci/cd":   "CI/CD",
	"cicd":    "CI/CD",
	"ci cd":   "CI/CD",
	"rest":    "REST",
	"rest api": "REST API",
	"restful": "REST",
	"ios":     "iOS",
	"jwt":     "JWT",
	"oauth":   "OAuth",
	"oauth2":  "OAuth",
	"github":  "GitHub",
	"gitlab":  "GitLab",
	"devops":  "DevOps",
	"dynamodb": "DynamoDB",
	"rabbitmq": "RabbitMQ",
	"power bi": "Power BI",
	"powerbi":  "Power BI",
	"sqlserver": "SQL Server",
	"ms sql":    "SQL Server",
	"mssql":     "SQL Server",
	"neo4j":     "Neo4j",
	"web3":      "Web3",
	"cloudformation": "CloudFormation",
	"tailwind css":   "Tailwind CSS",
	"sql server":     "SQL Server",
	"ruby on rails":  "Ruby on Rails",
	"mariadb":        "MariaDB",
	"objective-c":    "Objective-C",
	"generative ai":  "Generative AI",
}

// Alias returns the canonical display string for a lowercase normalized key.
func Alias(lower string) (string, bool) {
	c, ok := aliases[lower]
	return c, ok
}
