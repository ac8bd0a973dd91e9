package portfolio

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
)

// DefaultSnapshot is the dataset written by the bootstrap seed for a fresh
// deployment. IDs are generated per call.
func DefaultSnapshot() *Snapshot {
	emptyURL := ""
	return &Snapshot{
		Profile: &profile.Profile{
			Name:   "Sanket Gaikwad",
			Avatar: "https://placehold.co/400x400.png",
			Title:  "Full Stack Developer & AI Enthusiast",
			About: "I'm a passionate developer with a knack for creating elegant solutions " +
				"in the least amount of time. I love diving into new technologies and " +
				"constantly expanding my skillset. My journey in tech has been driven by a " +
				"curiosity to understand how things work and a desire to build things that " +
				"make a difference. Currently exploring the world of AI and its applications.",
			CVUrl:     "",
			UpdatedAt: time.Now().UTC(),
		},
		Education: []education.Education{
			{
				ID:     uuid.New(),
				School: "University of Technology",
				Degree: "Bachelor of Science in Computer Science",
				Period: "2019 - 2023",
			},
			{
				ID:     uuid.New(),
				School: "Tech Academy",
				Degree: "Advanced Web Development Bootcamp",
				Period: "2023",
			},
		},
		Internships: []internship.Internship{
			{
				ID:        uuid.New(),
				Company:   "Innovate Corp",
				Role:      "Software Engineer Intern",
				StartDate: "2022-06-01",
				EndDate:   "2022-08-31",
				Location:  "Remote",
				Description: "Worked on the core platform, contributing to both front-end and " +
					"back-end services. Developed new features, fixed bugs, and participated " +
					"in the full software development lifecycle.",
				Memories: "A fantastic learning experience collaborating with senior engineers " +
					"on a real-world product. The weekly demo day was a highlight.",
				Images:         []string{"https://placehold.co/600x400.png", "https://placehold.co/600x400.png"},
				CertificateURL: &emptyURL,
				ReportURL:      &emptyURL,
			},
			{
				ID:        uuid.New(),
				Company:   "Future Systems Ltd.",
				Role:      "Data Science Intern",
				StartDate: "2023-01-15",
				EndDate:   "2023-04-15",
				Location:  "Pune, India",
				Description: "Assisted the data science team in developing machine learning " +
					"models for predictive analytics. Responsible for data cleaning, feature " +
					"engineering, and model evaluation.",
				Memories: "My first dive into professional data science, capped by presenting " +
					"customer churn findings to the product team.",
				Images:         []string{"https://placehold.co/600x400.png"},
				CertificateURL: &emptyURL,
				ReportURL:      &emptyURL,
			},
		},
		Projects: []project.Project{
			{
				ID:          uuid.New(),
				Title:       "E-commerce Platform",
				Description: "A full-featured e-commerce website built with Next.js, TypeScript, and Tailwind CSS.",
				ImageURL:    "https://placehold.co/600x400.png",
				Link:        "#",
				Introduction: "A comprehensive e-commerce solution designed to provide a seamless " +
					"shopping experience, with a modern responsive interface and a robust backend.",
				Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Stripe", "Prisma"},
				Features: []string{
					"User Authentication (NextAuth)", "Product Catalog with Filtering",
					"Shopping Cart Functionality", "Secure Checkout with Stripe",
					"Admin Dashboard for Product Management",
				},
			},
			{
				ID:          uuid.New(),
				Title:       "AI-Powered Chatbot",
				Description: "A customer service chatbot that uses natural language processing to respond to user queries.",
				ImageURL:    "https://placehold.co/600x400.png",
				Link:        "#",
				Introduction: "Developed to automate customer support, leveraging natural language " +
					"processing to understand user intent and respond in real time.",
				Technologies: []string{"Python", "Flask", "NLTK", "React", "WebSocket"},
				Features: []string{
					"Natural Language Understanding", "Real-time Responses",
					"Conversation History", "Integration with Web Interfaces", "Sentiment Analysis",
				},
			},
			{
				ID:          uuid.New(),
				Title:       "Portfolio Website",
				Description: "This very portfolio website, designed to be dynamic and easily updatable through a custom admin panel.",
				ImageURL:    "https://placehold.co/600x400.png",
				Link:        "#",
				Introduction: "A personal portfolio with a clean, modern design and a custom admin " +
					"panel for content management without touching the code.",
				Technologies: []string{"Next.js", "React", "TypeScript", "ShadCN UI", "Tailwind CSS"},
				Features: []string{
					"Dynamic Content Management", "Responsive Design", "Admin Authentication",
					"Light/Dark Mode", "Interactive UI Components",
				},
			},
		},
		OngoingProjects: []project.Project{
			{
				ID:          uuid.New(),
				Title:       "AI-Powered Recipe Generator",
				Description: "An application that generates custom recipes based on user-provided ingredients and dietary preferences.",
				ImageURL:    "https://placehold.co/600x400.png",
				Link:        "#",
				Introduction: "Currently in development, aiming to reduce food waste by helping " +
					"users discover recipes for ingredients they already have.",
				Technologies: []string{"Next.js", "Genkit", "Firebase", "Tailwind CSS"},
				Features: []string{
					"Ingredient-based recipe generation", "Dietary filter support (vegan, gluten-free, etc.)",
					"Saving and rating favorite recipes", "AI-generated food photography",
				},
				Ongoing: true,
			},
		},
		Certifications: []certification.Certification{
			{
				ID:       uuid.New(),
				Name:     "Certified Cloud Practitioner",
				Issuer:   "Amazon Web Services",
				Date:     "2023",
				ImageURL: "https://placehold.co/600x400.png",
			},
			{
				ID:       uuid.New(),
				Name:     "GenAI Professional",
				Issuer:   "Google Cloud",
				Date:     "2024",
				ImageURL: "https://placehold.co/600x400.png",
			},
		},
		Contacts: []contact.Contact{},
	}
}
