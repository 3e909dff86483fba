package main

import "html/template"

// Site owner details used in the layout, hero and footer.
const (
	OwnerName    = "Adarsh Nambiar"
	OwnerTagline = "Web Developer & Computer Engineer"
	ResumePath   = "/static/resume.pdf"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryTools    SkillCategory = "tools"
	CategoryOther    SkillCategory = "other"
)

type Skill struct {
	Name     string
	Level    int // 0-100
	Icon     string
	Category SkillCategory
}

type Experience struct {
	Company     string
	Position    string
	Duration    string
	Description []string
}

type Project struct {
	Title        string
	Description  string
	Technologies []string
	DemoURL      string
	SourceURL    string
	Image        string
}

type Certificate struct {
	Title  string
	Issuer string
	Date   string
	URL    string
}

type VolunteerRole struct {
	Title        string
	Organization string
	Period       string
	Description  string
}

type Language struct {
	Name        string
	Proficiency string // Native, Fluent, Bilingual or Conversational
	Level       int
	Image       string
}

type ContactDetail struct {
	Title   string
	Content string
	Href    template.URL // tel: links are not on html/template's safe list
}

type SocialLink struct {
	Name string
	Href string
}

var (
	HeroPhrases = []string{"Web Developer", "Cloud & DevOps", "Computer Engineer", "Constant Learner", "Tech Enthusiast"}

	// AboutMe is Markdown, rendered once at startup.
	AboutMe = `I'm a web developer and computer engineer who enjoys building clean, user-friendly web applications.
With experience across both frontend and backend, I focus on creating responsive, accessible, and
high-performing digital experiences.

My approach combines technical excellence with creative problem-solving, allowing me to deliver
solutions that meet technical requirements. I'm also passionate about **cloud technologies** and **DevOps**.

Outside of coding, I love travelling, diving into new tech and learning something new every day.`

	VolunteerSummary = `Passionate NSS volunteer dedicated to community development, fostering national responsibility,
and eager for more opportunities to create a better tomorrow.`

	Skills = []Skill{
		{Name: "HTML5", Level: 95, Icon: "html.png", Category: CategoryFrontend},
		{Name: "CSS3", Level: 85, Icon: "css.png", Category: CategoryFrontend},
		{Name: "JavaScript", Level: 90, Icon: "javascript.png", Category: CategoryFrontend},
		{Name: "React", Level: 90, Icon: "react.png", Category: CategoryFrontend},
		{Name: "Next.js", Level: 80, Icon: "nextjs.png", Category: CategoryFrontend},
		{Name: "TypeScript", Level: 80, Icon: "typescript.png", Category: CategoryFrontend},
		{Name: "Tailwind CSS", Level: 85, Icon: "tailwindcss.png", Category: CategoryFrontend},
		{Name: "Bootstrap", Level: 70, Icon: "bootstrap.png", Category: CategoryFrontend},

		{Name: "Node.js", Level: 85, Icon: "nodejs.png", Category: CategoryBackend},
		{Name: "Express.js", Level: 75, Icon: "expressjs.png", Category: CategoryBackend},
		{Name: "MongoDB", Level: 85, Icon: "mongodb.png", Category: CategoryBackend},
		{Name: "Python", Level: 60, Icon: "python.png", Category: CategoryBackend},

		{Name: "Git", Level: 75, Icon: "git.png", Category: CategoryTools},
		{Name: "GitHub", Level: 85, Icon: "github.png", Category: CategoryTools},
		{Name: "AWS", Level: 80, Icon: "aws.png", Category: CategoryTools},
		{Name: "Azure", Level: 75, Icon: "azure.png", Category: CategoryTools},
		{Name: "Firebase", Level: 80, Icon: "firebase.png", Category: CategoryTools},
		{Name: "Appwrite", Level: 75, Icon: "appwrite.png", Category: CategoryTools},

		{Name: "Cloudinary", Level: 85, Icon: "cloudinary.png", Category: CategoryOther},
		{Name: "Figma", Level: 70, Icon: "figma.png", Category: CategoryOther},
		{Name: "Canva", Level: 85, Icon: "canva.png", Category: CategoryOther},
	}

	Experiences = []Experience{
		{
			Company:  "Teraforge Digital Lab LLP",
			Position: "Full Stack Developer Intern",
			Duration: "April 2025 - Present",
			Description: []string{
				"Built a car listing web application using React, integrating an AI-powered chatbot with contextual awareness and smart features.",
				"Implemented Firebase for real-time database management and secure user authentication.",
				"Worked on tools like WordPress and Hostinger to accelerate client website deployment and delivery.",
				"Collaborated across teams to deliver scalable, user-friendly web solutions aligned with client needs.",
			},
		},
		{
			Company:  "VIT Mumbai",
			Position: "Systems Setup Intern",
			Duration: "Jun 2024 - Jun 2024",
			Description: []string{
				"Gained hands-on experience in various aspects of Systems infrastructure and administration.",
				"Worked on setting up PCs, installing OS from Windows Deployment Center (WDC), and configuring systems to join a domain with security settings",
				"Learnt tasks like configuring network setups and crimping RJ45 cables to ensure reliable connectivity",
			},
		},
	}

	Projects = []Project{
		{
			Title:        "VotePlay Voting Simulator",
			Description:  "An interactive simulator that allows users to experience the electoral process in India.",
			Technologies: []string{"React.js", "Tailwind CSS", "MongoDB", "Node.js", "Express.js", "Cashfree"},
			DemoURL:      "https://voteplay.tech",
			SourceURL:    "https://github.com/adarshnambiar12",
			Image:        "/images/projects/voteplay.png",
		},
		{
			Title:        "NSS Website",
			Description:  "The NSS website serves as a central hub for updates and activities, promoting social and civic responsibility among students.",
			Technologies: []string{"React", "Tailwind CSS", "Cloudinary", "Netlify"},
			DemoURL:      "https://nssvit.netlify.app",
			SourceURL:    "https://github.com/adarshnambiar12",
			Image:        "/images/projects/nssvit.png",
		},
		{
			Title:        "My Portfolio Website",
			Description:  "A personal portfolio website using advanced animations and effects.",
			Technologies: []string{"Go", "Gin", "htmx", "Tailwind CSS", "SQLite"},
			DemoURL:      "https://adarshnambiar.me",
			SourceURL:    "https://github.com/myportfolio",
			Image:        "/images/projects/portfolio.png",
		},
		{
			Title:        "Expense Tracker",
			Description:  "A simple expense tracker app to manage your finances.",
			Technologies: []string{"React", "Tailwind CSS", "Local Storage"},
			DemoURL:      "https://myexpensetracker12.netlify.app/",
			SourceURL:    "https://github.com/adarshnambiar12/react-basic-projects/tree/main/12.%20Expense%20Tracker/expense-tracker",
			Image:        "/images/projects/expensetracker.png",
		},
		{
			Title:        "Memory Game",
			Description:  "A fun memory game to test your memory skills.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			DemoURL:      "https://memorygameplay.netlify.app/",
			SourceURL:    "https://github.com/adarshnambiar12",
			Image:        "/images/projects/memorygame.png",
		},
	}

	Certificates = []Certificate{
		{
			Title:  "Postman API Fundamentals Student Expert",
			Issuer: "Postman",
			Date:   "March 2024",
			URL:    "https://badgr.com/public/assertions/7i4wGzJCQmaPCDJMgpnvQw",
		},
		{
			Title:  "AWS Academy Cloud Architecting",
			Issuer: "AWS",
			Date:   "November 2024",
			URL:    "https://www.credly.com/badges/7ecdb36f-476a-473f-b614-0bd000363082/public_url",
		},
		{
			Title:  "AWS Academy Cloud Foundations",
			Issuer: "AWS",
			Date:   "March 2024",
			URL:    "https://www.credly.com/badges/28e3a00a-2e14-415d-a109-10bce2b5f88c",
		},
		{
			Title:  "Web Development Fundamentals",
			Issuer: "IBM",
			Date:   "September 2024",
			URL:    "https://www.credly.com/badges/06611bf4-5b31-4013-9a71-a85ad7074e49/public_url",
		},
		{
			Title:  "Google Cloud Computing Foundations",
			Issuer: "Google Cloud",
			Date:   "October 2023",
			URL:    "https://www.cloudskillsboost.google/public_profiles/ad48251d-f1b3-4755-ad10-04d2e629c4cf",
		},
	}

	VolunteerRoles = []VolunteerRole{
		{Title: "Student Volunteer", Organization: "National Service Scheme", Period: "Jun 2023 - May 2024"},
		{Title: "Documentation Head", Organization: "National Service Scheme", Period: "May 2024 - Feb 2025"},
	}

	Languages = []Language{
		{Name: "English", Proficiency: "Fluent", Level: 90, Image: "english.png"},
		{Name: "Hindi", Proficiency: "Bilingual", Level: 95, Image: "hindi.png"},
		{Name: "Malayalam", Proficiency: "Native", Level: 95, Image: "malayalam.png"},
	}

	ContactDetails = []ContactDetail{
		{Title: "Email", Content: "adarshnambiar4912@gmail.com", Href: "mailto:adarshnambiar4912@gmail.com"},
		{Title: "Phone", Content: "+91 70392 96077", Href: "tel:+917039296077"},
		{Title: "Location", Content: "Mumbai, Maharashtra, India"},
	}

	SocialLinks = []SocialLink{
		{Name: "github", Href: "https://github.com/adarshnambiar12"},
		{Name: "linkedin", Href: "https://www.linkedin.com/in/adarshnambiar12/"},
		{Name: "twitter", Href: "https://x.com/adarshnambiarr"},
		{Name: "instagram", Href: "https://www.instagram.com/adarshnambiar12/"},
	}
)
