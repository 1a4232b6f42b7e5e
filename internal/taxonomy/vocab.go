// Package taxonomy provides the curated skill vocabulary and a deterministic
// annotator over it. The annotator implements the same capability contract as
// external NLP-backed services, so the extraction layer can swap between them.
package taxonomy

import "github.com/jonathan/ats-screener/internal/types"

// CommonSkills is the curated technical-skills vocabulary. It serves three
// roles: the fallback scan list for the skill extractor, the dictionary behind
// the bundled annotator, and the filter that keeps noisy matches out of
// user-facing skill-gap output.
var CommonSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "c", "ruby", "php", "swift", "kotlin",
	"go", "rust", "scala", "r", "matlab", "perl", "shell", "bash", "powershell",

	// Web technologies
	"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
	"laravel", "ruby on rails", "asp.net", ".net", "jquery", "bootstrap", "sass", "less",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sqlite",
	"nosql", "cassandra", "dynamodb", "firebase",

	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
	"terraform", "ansible", "chef", "puppet", "vagrant", "linux", "unix", "windows",

	// Data science and ML
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "matplotlib", "seaborn", "jupyter", "tableau", "power bi",
	"data analysis", "data science", "statistics", "excel",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "cordova", "ionic",

	// Process and tooling
	"api", "rest", "graphql", "microservices", "agile", "scrum", "kanban", "jira",
	"confluence", "slack", "teams", "zoom",
}

var commonSkillSet = types.NewSkillSet(CommonSkills...)

// IsCommonSkill reports whether the canonical form of s is in the curated
// vocabulary.
func IsCommonSkill(s string) bool {
	return commonSkillSet.Contains(s)
}
