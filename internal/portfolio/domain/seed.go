package domain

// The Default* functions return the built-in content used whenever a
// collection has no readable mirror. Each call returns a fresh slice.

func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Web", Slug: "web"},
		{ID: "2", Name: "Mobile", Slug: "mobile"},
		{ID: "3", Name: "AI / ML", Slug: "ai"},
		{ID: "4", Name: "DevOps", Slug: "devops"},
	}
}

func DefaultProjects() []Project {
	return []Project{
		{
			ID:              "1",
			Title:           "E-Commerce Platform",
			Description:     "A full-stack e-commerce solution with real-time inventory, payments, and admin dashboard.",
			LongDescription: "Built a scalable e-commerce platform handling thousands of concurrent users. Features include real-time inventory tracking, Stripe payment integration, order management, and a comprehensive admin dashboard for store owners.",
			TechStack:       []string{"React", "Node.js", "PostgreSQL", "Stripe", "Redis"},
			Category:        "web",
			GithubURL:       "https://github.com",
			LiveURL:         "https://example.com",
			Features:        []string{"Real-time inventory tracking", "Stripe payments", "Admin dashboard", "Order management", "User authentication"},
			Featured:        true,
			CreatedAt:       "2024-06-15",
		},
		{
			ID:              "2",
			Title:           "AI Content Generator",
			Description:     "An intelligent content creation tool powered by GPT-4 with custom fine-tuning capabilities.",
			LongDescription: "Developed an AI-powered content generation platform that leverages GPT-4 for creating blog posts, social media content, and marketing copy. Includes custom fine-tuning pipelines and content scheduling.",
			TechStack:       []string{"Python", "FastAPI", "React", "OpenAI", "Docker"},
			Category:        "ai",
			GithubURL:       "https://github.com",
			Features:        []string{"GPT-4 integration", "Custom fine-tuning", "Content scheduling", "Analytics dashboard", "Multi-language support"},
			Featured:        true,
			CreatedAt:       "2024-04-20",
		},
		{
			ID:              "3",
			Title:           "DevOps Dashboard",
			Description:     "A centralized monitoring and deployment dashboard for cloud infrastructure management.",
			LongDescription: "Created a comprehensive DevOps dashboard that provides real-time monitoring, automated deployments, and infrastructure management across multiple cloud providers.",
			TechStack:       []string{"TypeScript", "Go", "Kubernetes", "Terraform", "Grafana"},
			Category:        "devops",
			GithubURL:       "https://github.com",
			LiveURL:         "https://example.com",
			Features:        []string{"Real-time monitoring", "Auto-scaling", "CI/CD pipelines", "Multi-cloud support", "Alert management"},
			Featured:        true,
			CreatedAt:       "2024-02-10",
		},
		{
			ID:              "4",
			Title:           "Fitness Tracker App",
			Description:     "A cross-platform mobile app for tracking workouts, nutrition, and health metrics.",
			LongDescription: "Designed and built a cross-platform mobile application for fitness enthusiasts. Features include workout tracking, nutrition logging, health metrics visualization, and social challenges.",
			TechStack:       []string{"React Native", "Firebase", "Node.js", "Chart.js"},
			Category:        "mobile",
			GithubURL:       "https://github.com",
			Features:        []string{"Workout tracking", "Nutrition logging", "Health metrics", "Social challenges", "Progress charts"},
			Featured:        false,
			CreatedAt:       "2024-01-05",
		},
	}
}

func DefaultSkills() []Skill {
	return []Skill{
		{ID: "1", Name: "React", Category: SkillFrontend, Level: 95},
		{ID: "2", Name: "TypeScript", Category: SkillFrontend, Level: 90},
		{ID: "3", Name: "Next.js", Category: SkillFrontend, Level: 85},
		{ID: "4", Name: "Tailwind CSS", Category: SkillFrontend, Level: 92},
		{ID: "5", Name: "Vue.js", Category: SkillFrontend, Level: 70},
		{ID: "6", Name: "Node.js", Category: SkillBackend, Level: 88},
		{ID: "7", Name: "Python", Category: SkillBackend, Level: 82},
		{ID: "8", Name: "PostgreSQL", Category: SkillBackend, Level: 80},
		{ID: "9", Name: "GraphQL", Category: SkillBackend, Level: 75},
		{ID: "10", Name: "Docker", Category: SkillTools, Level: 85},
		{ID: "11", Name: "Git", Category: SkillTools, Level: 93},
		{ID: "12", Name: "AWS", Category: SkillTools, Level: 78},
		{ID: "13", Name: "Figma", Category: SkillTools, Level: 70},
		{ID: "14", Name: "Go", Category: SkillBackend, Level: 65},
		{ID: "15", Name: "Redis", Category: SkillBackend, Level: 72},
	}
}

func DefaultExperiences() []Experience {
	return []Experience{
		{
			ID:           "1",
			Type:         ExperienceWork,
			Title:        "Senior Software Engineer",
			Organization: "Tech Corp",
			Location:     "San Francisco, CA",
			StartDate:    "2023-01",
			Description:  "Leading frontend architecture and mentoring a team of 5 developers. Building scalable web applications with React and TypeScript.",
			Current:      true,
		},
		{
			ID:           "2",
			Type:         ExperienceWork,
			Title:        "Full Stack Developer",
			Organization: "StartupXYZ",
			Location:     "Remote",
			StartDate:    "2021-06",
			EndDate:      "2022-12",
			Description:  "Built and maintained multiple client-facing applications. Implemented CI/CD pipelines and improved deployment efficiency by 40%.",
		},
		{
			ID:           "3",
			Type:         ExperienceEducation,
			Title:        "B.Sc. Computer Science",
			Organization: "University of Technology",
			Location:     "Milan, Italy",
			StartDate:    "2017-09",
			EndDate:      "2021-05",
			Description:  "Focused on software engineering, algorithms, and artificial intelligence. Graduated with honors.",
		},
	}
}

// DefaultMessages is always empty; messages only come from the contact form.
func DefaultMessages() []ContactMessage {
	return []ContactMessage{}
}
