package keywords

// Builtin dictionaries, used whenever no external dictionary file is
// configured or a configured one fails to load.

func defaultSkills() Dictionary {
	return Dictionary{
		"programming_languages": {
			"python":     {Category: "programming", Weight: 1.0, Aliases: []string{"py"}},
			"java":       {Category: "programming", Weight: 1.0},
			"javascript": {Category: "programming", Weight: 1.0, Aliases: []string{"js", "node.js", "nodejs"}},
			"typescript": {Category: "programming", Weight: 1.0, Aliases: []string{"ts"}},
			"c++":        {Category: "programming", Weight: 1.0, Aliases: []string{"cpp", "c plus plus"}},
			"c#":         {Category: "programming", Weight: 1.0, Aliases: []string{"csharp", "c sharp"}},
			"php":        {Category: "programming", Weight: 1.0},
			"ruby":       {Category: "programming", Weight: 1.0},
			"go":         {Category: "programming", Weight: 1.0, Aliases: []string{"golang"}},
			"rust":       {Category: "programming", Weight: 1.0},
			"swift":      {Category: "programming", Weight: 1.0},
			"kotlin":     {Category: "programming", Weight: 1.0},
			"scala":      {Category: "programming", Weight: 1.0},
			"r":          {Category: "programming", Weight: 1.0},
			"matlab":     {Category: "programming", Weight: 1.0},
			"sql":        {Category: "database", Weight: 1.0, Aliases: []string{"structured query language"}},
		},
		"data_science": {
			"machine learning":            {Category: "ai", Weight: 1.0, Aliases: []string{"ml", "machinelearning"}},
			"deep learning":               {Category: "ai", Weight: 1.0, Aliases: []string{"dl", "neural networks"}},
			"artificial intelligence":     {Category: "ai", Weight: 1.0, Aliases: []string{"ai"}},
			"natural language processing": {Category: "ai", Weight: 1.0, Aliases: []string{"nlp"}},
			"computer vision":             {Category: "ai", Weight: 1.0, Aliases: []string{"cv"}},
			"data analysis":               {Category: "analysis", Weight: 1.0, Aliases: []string{"data analytics"}},
			"statistics":                  {Category: "analysis", Weight: 1.0, Aliases: []string{"statistical analysis"}},
			"big data":                    {Category: "data", Weight: 1.0},
			"data mining":                 {Category: "data", Weight: 1.0},
			"predictive modeling":         {Category: "modeling", Weight: 1.0},
		},
	}
}

func defaultTechnologies() Dictionary {
	return Dictionary{
		"frameworks": {
			"react":   {Category: "frontend", Weight: 1.0, Aliases: []string{"reactjs", "react.js"}},
			"angular": {Category: "frontend", Weight: 1.0, Aliases: []string{"angularjs"}},
			"vue":     {Category: "frontend", Weight: 1.0, Aliases: []string{"vuejs", "vue.js"}},
			"django":  {Category: "backend", Weight: 1.0},
			"flask":   {Category: "backend", Weight: 1.0},
			"spring":  {Category: "backend", Weight: 1.0, Aliases: []string{"spring boot"}},
			"express": {Category: "backend", Weight: 1.0, Aliases: []string{"expressjs", "express.js"}},
			"laravel": {Category: "backend", Weight: 1.0},
			"rails":   {Category: "backend", Weight: 1.0, Aliases: []string{"ruby on rails"}},
		},
		"databases": {
			"mysql":         {Category: "database", Weight: 1.0},
			"postgresql":    {Category: "database", Weight: 1.0, Aliases: []string{"postgres"}},
			"mongodb":       {Category: "database", Weight: 1.0, Aliases: []string{"mongo"}},
			"redis":         {Category: "database", Weight: 1.0},
			"elasticsearch": {Category: "database", Weight: 1.0, Aliases: []string{"elastic search"}},
			"cassandra":     {Category: "database", Weight: 1.0},
			"oracle":        {Category: "database", Weight: 1.0},
			"sqlite":        {Category: "database", Weight: 1.0},
		},
		"cloud_platforms": {
			"aws":        {Category: "cloud", Weight: 1.0, Aliases: []string{"amazon web services"}},
			"azure":      {Category: "cloud", Weight: 1.0, Aliases: []string{"microsoft azure"}},
			"gcp":        {Category: "cloud", Weight: 1.0, Aliases: []string{"google cloud platform", "google cloud"}},
			"docker":     {Category: "containerization", Weight: 1.0},
			"kubernetes": {Category: "containerization", Weight: 1.0, Aliases: []string{"k8s"}},
			"terraform":  {Category: "infrastructure", Weight: 1.0},
		},
	}
}

func defaultSoftSkills() Dictionary {
	return Dictionary{
		"management": {
			"leadership":         {Category: "management", Weight: 1.0, Aliases: []string{"team leadership"}},
			"project management": {Category: "management", Weight: 1.0},
		},
		"interpersonal": {
			"communication": {Category: "interpersonal", Weight: 1.0, Aliases: []string{"communication skills"}},
			"teamwork":      {Category: "interpersonal", Weight: 1.0, Aliases: []string{"team work", "collaboration"}},
		},
		"analytical": {
			"problem solving":     {Category: "analytical", Weight: 1.0, Aliases: []string{"problem-solving"}},
			"critical thinking":   {Category: "analytical", Weight: 1.0},
			"analytical thinking": {Category: "analytical", Weight: 1.0},
		},
		"organization": {
			"time management": {Category: "organization", Weight: 1.0},
		},
		"personal": {
			"adaptability": {Category: "personal", Weight: 1.0, Aliases: []string{"flexibility"}},
			"creativity":   {Category: "personal", Weight: 1.0, Aliases: []string{"innovative thinking"}},
		},
	}
}

func defaultIndustryTerms() Dictionary {
	return Dictionary{
		"methodologies": {
			"agile":     {Category: "methodology", Weight: 1.0, Aliases: []string{"agile development"}},
			"scrum":     {Category: "methodology", Weight: 1.0},
			"kanban":    {Category: "methodology", Weight: 1.0},
			"waterfall": {Category: "methodology", Weight: 1.0},
			"devops":    {Category: "methodology", Weight: 1.0, Aliases: []string{"dev ops"}},
			"ci/cd":     {Category: "methodology", Weight: 1.0, Aliases: []string{"continuous integration", "continuous deployment"}},
		},
		"roles": {
			"full stack developer":      {Category: "role", Weight: 1.0, Aliases: []string{"fullstack developer"}},
			"frontend developer":        {Category: "role", Weight: 1.0, Aliases: []string{"front-end developer"}},
			"backend developer":         {Category: "role", Weight: 1.0, Aliases: []string{"back-end developer"}},
			"data scientist":            {Category: "role", Weight: 1.0},
			"machine learning engineer": {Category: "role", Weight: 1.0, Aliases: []string{"ml engineer"}},
			"devops engineer":           {Category: "role", Weight: 1.0},
			"product manager":           {Category: "role", Weight: 1.0, Aliases: []string{"pm"}},
			"software architect":        {Category: "role", Weight: 1.0},
		},
	}
}

func defaultSeniorityLevels() Dictionary {
	return Dictionary{
		"levels": {
			"intern":    {Category: "seniority", Weight: 0.8, Aliases: []string{"internship", "trainee"}},
			"junior":    {Category: "seniority", Weight: 1.0, Aliases: []string{"entry level", "entry-level", "jr"}},
			"mid-level": {Category: "seniority", Weight: 1.0, Aliases: []string{"mid level", "intermediate"}},
			"senior":    {Category: "seniority", Weight: 1.0, Aliases: []string{"sr"}},
			"lead":      {Category: "seniority", Weight: 1.0, Aliases: []string{"tech lead", "team lead"}},
			"principal": {Category: "seniority", Weight: 1.0, Aliases: []string{"staff"}},
		},
	}
}
