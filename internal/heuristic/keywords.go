// Package heuristic implements the rule-based CV analyzer used when the
// AI extraction path is unavailable or returns unusable output. It is pure
// and deterministic: identical input text always yields identical results.
package heuristic

// monthNumbers maps lowercase English month prefixes to their zero-padded
// numeric form. Abbreviations resolve through their first three letters.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// nonExperienceMarkers flag lines that are section headers or contact rows,
// never work experience.
var nonExperienceMarkers = []string{
	"email", "phone", "education", "skills", "summary", "objective", "profile",
}

// jobTitleKeywords admit a dateless line as candidate work experience.
var jobTitleKeywords = []string{
	"developer", "engineer", "manager", "director", "analyst", "consultant",
	"designer", "architect", "administrator", "specialist", "coordinator",
	"lead", "officer", "executive", "intern", "assistant", "technician",
	"scientist", "accountant", "recruiter",
}

// companyIndicators admit a dateless line as candidate work experience when no
// job title keyword is present.
var companyIndicators = []string{
	" at ", " - ", " @ ", "inc", "corp", "ltd", "llc",
}

// corporateSuffixes identify the trailing company name when a line has no
// explicit role/company separator.
var corporateSuffixes = []string{
	"inc", "corp", "ltd", "llc", "company", "group", "enterprises",
	"solutions", "technologies", "systems",
}

// roleCompanySeparators are tried in order; the first one present in the line
// splits role from company.
var roleCompanySeparators = []string{
	" at ", " - ", " | ", " • ", " @ ", " in ", " of ", " with ",
}

// educationKeywords gate education line detection.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma",
	"certificate", "degree", "university", "college", "school", "institute",
	"academy",
}

// institutionKeywords decide which side of a split education line names the
// institution.
var institutionKeywords = []string{
	"university", "college", "school", "institute", "academy",
}

// educationSeparators split qualification from institution. " of " and " in "
// are deliberately excluded so "Bachelor of Science in CS" stays intact.
var educationSeparators = []string{
	", ", " at ", " - ", " | ", " from ",
}

// managementKeywords identify management roles for management-tenure
// computation.
var managementKeywords = []string{
	"manager", "director", "lead", "supervisor", "head", "chief",
	"manage", "supervise",
}

// technicalSkillKeywords are matched against the full CV text to populate
// skills.technical. Canonical casing is preserved in the output.
var technicalSkillKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Ruby", "PHP",
	"C++", "C#", "Swift", "Kotlin", "Rust", "Scala", "SQL", "HTML", "CSS",
	"React", "Angular", "Vue", "Node.js", "Django", "Spring", "Rails",
	"Docker", "Kubernetes", "Terraform", "AWS", "Azure", "GCP",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka", "Elasticsearch",
	"GraphQL", "REST", "Microservices", "Linux", "Git", "CI/CD",
	"Machine Learning", "Data Science", "DevOps",
}

// softSkillKeywords are matched against the full CV text to populate
// skills.soft.
var softSkillKeywords = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Time Management", "Adaptability", "Critical Thinking", "Collaboration",
	"Creativity", "Attention to Detail", "Negotiation", "Mentoring",
	"Presentation", "Conflict Resolution",
}

// languageNames are matched against the full CV text for language-related
// custom fields.
var languageNames = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Dutch", "Russian", "Turkish", "Arabic", "Hebrew", "Hindi", "Chinese",
	"Mandarin", "Japanese", "Korean",
}

// industryKeywords score industry detection; the industry with the most
// keyword hits in the CV text wins.
var industryKeywords = map[string][]string{
	"Technology":    {"software", "developer", "engineer", "programming", "cloud", "saas", "startup", "tech"},
	"Finance":       {"bank", "banking", "financial", "finance", "accounting", "investment", "trading", "fintech", "insurance"},
	"Healthcare":    {"hospital", "medical", "health", "clinic", "patient", "pharmaceutical", "nurse", "doctor"},
	"Education":     {"teacher", "teaching", "curriculum", "classroom", "tutor", "lecturer", "professor"},
	"Retail":        {"retail", "store", "merchandising", "e-commerce", "ecommerce", "sales associate"},
	"Manufacturing": {"manufacturing", "factory", "production line", "assembly", "industrial", "supply chain"},
	"Marketing":     {"marketing", "advertising", "brand", "campaign", "seo", "social media"},
	"Construction":  {"construction", "contractor", "civil", "site manager", "building"},
	"Hospitality":   {"hotel", "restaurant", "hospitality", "chef", "tourism", "catering"},
	"Legal":         {"legal", "law firm", "attorney", "lawyer", "paralegal", "compliance"},
}
