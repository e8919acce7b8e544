// internal/jobs/seed.go
package jobs

import "jobboard-api/internal/models"

// SeedPostings is the built-in catalog served while the database holds no
// postings yet, so browsing and search work on a fresh deployment. IDs are
// plain ordinals and never collide with stored UUIDs.
func SeedPostings() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:       "1",
			Title:    "Senior React Developer",
			Company:  "TechFlow Inc",
			Logo:     "https://ui-avatars.com/api/?name=TF&background=6366f1&color=fff",
			Location: "San Francisco, CA",
			Type:     models.JobTypeFullTime,
			Salary:   "$120k - $180k",
			Posted:   "2 days ago",
			Featured: true,
			Skills:   []string{"React", "TypeScript", "Next.js", "GraphQL"},
			Description: "We're looking for a Senior React Developer to join our growing " +
				"frontend team. You'll build performant, accessible interfaces used by " +
				"millions of users and mentor junior engineers along the way.",
			Requirements: []string{
				"5+ years of experience with React and modern JavaScript",
				"Strong TypeScript skills",
				"Experience with state management libraries",
				"Familiarity with testing frameworks",
			},
			Benefits: []string{
				"Competitive salary and equity",
				"Health, dental, and vision insurance",
				"Flexible working hours",
				"Annual learning budget",
			},
			About: "TechFlow builds collaboration tools for distributed product teams.",
		},
		{
			ID:       "2",
			Title:    "Product Designer",
			Company:  "DesignHub",
			Logo:     "https://ui-avatars.com/api/?name=DH&background=ec4899&color=fff",
			Location: "New York, NY",
			Type:     models.JobTypeFullTime,
			Salary:   "$90k - $130k",
			Posted:   "1 day ago",
			Featured: true,
			Skills:   []string{"Figma", "UI/UX", "Prototyping", "Design Systems"},
			Description: "Join our design team to craft beautiful, intuitive product " +
				"experiences from early discovery through polished delivery.",
			Requirements: []string{
				"3+ years of product design experience",
				"Expert-level Figma skills",
				"Portfolio demonstrating end-to-end design work",
			},
			Benefits: []string{
				"Hybrid work model",
				"Health insurance",
				"Design conference budget",
			},
			About: "DesignHub is a product studio partnering with early-stage startups.",
		},
		{
			ID:       "3",
			Title:    "DevOps Engineer",
			Company:  "CloudScale",
			Logo:     "https://ui-avatars.com/api/?name=CS&background=22c55e&color=fff",
			Location: "Remote",
			Type:     models.JobTypeRemote,
			Salary:   "$110k - $160k",
			Posted:   "3 days ago",
			Featured: true,
			Skills:   []string{"AWS", "Kubernetes", "Terraform", "CI/CD"},
			Description: "Own our cloud infrastructure end to end. You'll design " +
				"deployment pipelines, harden our Kubernetes clusters, and keep " +
				"production boring.",
			Requirements: []string{
				"4+ years of DevOps or SRE experience",
				"Deep AWS knowledge",
				"Production Kubernetes experience",
			},
			Benefits: []string{
				"Fully remote",
				"Home office stipend",
				"Quarterly team offsites",
			},
			About: "CloudScale provides managed infrastructure for high-growth companies.",
		},
		{
			ID:       "4",
			Title:    "Marketing Manager",
			Company:  "GrowthLab",
			Logo:     "https://ui-avatars.com/api/?name=GL&background=f59e0b&color=fff",
			Location: "Austin, TX",
			Type:     models.JobTypeFullTime,
			Salary:   "$80k - $110k",
			Posted:   "5 days ago",
			Skills:   []string{"SEO", "Content Strategy", "Analytics", "Paid Media"},
			Description: "Lead our demand generation efforts across content, SEO, and " +
				"paid channels. You'll own the funnel from first touch to qualified lead.",
			Requirements: []string{
				"4+ years of B2B marketing experience",
				"Hands-on experience with analytics tooling",
				"Track record of pipeline growth",
			},
			Benefits: []string{
				"Performance bonuses",
				"Health and dental insurance",
				"Unlimited PTO",
			},
			About: "GrowthLab helps SaaS companies scale their go-to-market engines.",
		},
		{
			ID:       "5",
			Title:    "Junior Data Analyst",
			Company:  "DataWise",
			Logo:     "https://ui-avatars.com/api/?name=DW&background=06b6d4&color=fff",
			Location: "Chicago, IL",
			Type:     models.JobTypeFullTime,
			Salary:   "$60k - $80k",
			Posted:   "1 week ago",
			Skills:   []string{"SQL", "Python", "Tableau", "Excel"},
			Description: "Kick-start your analytics career. You'll build dashboards, " +
				"answer ad-hoc questions for product teams, and learn modern data " +
				"tooling from senior analysts.",
			Requirements: []string{
				"Degree in a quantitative field or equivalent experience",
				"Working SQL knowledge",
				"Curiosity and attention to detail",
			},
			Benefits: []string{
				"Mentorship program",
				"Health insurance",
				"401(k) matching",
			},
			About: "DataWise turns messy operational data into decisions.",
		},
		{
			ID:       "6",
			Title:    "Customer Success Specialist",
			Company:  "SupportPro",
			Logo:     "https://ui-avatars.com/api/?name=SP&background=8b5cf6&color=fff",
			Location: "Remote",
			Type:     models.JobTypePartTime,
			Salary:   "$25 - $35/hr",
			Posted:   "4 days ago",
			Skills:   []string{"Communication", "CRM", "Problem Solving"},
			Description: "Be the friendly voice of our product. You'll onboard new " +
				"customers, resolve support tickets, and surface feedback to the " +
				"product team.",
			Requirements: []string{
				"2+ years in customer-facing roles",
				"Excellent written communication",
				"Experience with CRM software",
			},
			Benefits: []string{
				"Flexible schedule",
				"Remote-first team",
				"Growth opportunities",
			},
			About: "SupportPro delivers white-glove support for B2B software vendors.",
		},
		{
			ID:       "7",
			Title:    "Mechanical Engineer",
			Company:  "BuildRight",
			Logo:     "https://ui-avatars.com/api/?name=BR&background=ef4444&color=fff",
			Location: "Detroit, MI",
			Type:     models.JobTypeContract,
			Salary:   "$95k - $125k",
			Posted:   "2 weeks ago",
			Skills:   []string{"CAD", "SolidWorks", "Manufacturing", "Prototyping"},
			Description: "Design and validate mechanical assemblies for our next " +
				"generation of industrial automation hardware.",
			Requirements: []string{
				"BS in Mechanical Engineering",
				"5+ years of CAD experience",
				"Manufacturing process knowledge",
			},
			Benefits: []string{
				"Contract-to-hire path",
				"On-site gym",
				"Relocation assistance",
			},
			About: "BuildRight manufactures automation equipment for mid-size factories.",
		},
		{
			ID:       "8",
			Title:    "Head of Finance",
			Company:  "FinServe Capital",
			Logo:     "https://ui-avatars.com/api/?name=FC&background=0ea5e9&color=fff",
			Location: "Boston, MA",
			Type:     models.JobTypeFullTime,
			Salary:   "$160k+",
			Posted:   "1 month ago",
			Skills:   []string{"Financial Planning", "Accounting", "Forecasting", "Leadership"},
			Description: "Build and lead our finance function. You'll own planning, " +
				"reporting, and the annual audit while partnering closely with the CEO.",
			Requirements: []string{
				"10+ years of finance experience",
				"CPA or equivalent",
				"Prior leadership of a finance team",
			},
			Benefits: []string{
				"Executive compensation package",
				"Equity participation",
				"Comprehensive insurance",
			},
			About: "FinServe Capital provides lending products for small businesses.",
		},
	}
}
