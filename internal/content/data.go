package content

// Default returns the populated portfolio content.
func Default() *Content {
	return &Content{
		Site: Site{
			Name:     "Mustafa Mehmood",
			Role:     "Applied AI Scientist",
			Tagline:  "Building intelligent systems for high-stakes domains",
			Email:    "mustafamehmood8998@gmail.com",
			Phone:    "+44 7769 504 569",
			LinkedIn: "https://www.linkedin.com/in/mustafa-meh",
			GitHub:   "https://github.com/mustafameh",
			Location: "London, UK · Open to Relocate",
		},
		Experiences: []Experience{
			{
				Title:       "Applied Scientist & Applied Research Intern",
				Company:     "Thomson Reuters",
				Location:    "London, UK",
				Period:      "June 2025 – Present",
				Current:     true,
				Metric:      "0.88",
				MetricLabel: "Pearson Correlation to Expert Grades",
				Highlights: []string{
					"Initially hired as a 4-month intern; extended based on performance to take on full-time Applied Scientist responsibilities.",
					"Building tool-augmented multi-agent systems for cross-document risk assessment and extraction over high-stakes legal documents, supporting due diligence in M&A transactions.",
					"Designed an adversarial multi-agent evaluation pipeline that reverse-engineered expert grading criteria from audit sheets, achieving 90%+ failure detection with 0.88 Pearson correlation to expert grades to reducing the evaluation feedback loop from days to hours and enabling rapid iteration on solution development.",
					"Fine-tuned LLMs for specialized legal use cases including long-form contract drafting, customization, and summarization.",
				},
			},
			{
				Title:       "LLM Data Integrity Specialist",
				Company:     "Outlier AI",
				Location:    "Nottingham, UK",
				Period:      "May 2024 – May 2025",
				Metric:      "20%",
				MetricLabel: "Instruction Adherence Improvement",
				Highlights: []string{
					"Improved tool usage and function-calling capabilities of advanced reasoning LLMs through RLHF training pipelines, enabling models to infer, chain, and autonomously execute multi-step complex actions from high-level user intent, powering AI solutions for tech firms including Google and Meta.",
					"Curated and cleaned training datasets in collaboration with domain experts, achieving a 20% improvement in instruction adherence.",
				},
			},
			{
				Title:       "Data Scientist Intern",
				Company:     "Department of Neuroscience, University of Nottingham Malaysia",
				Location:    "Selangor, Malaysia",
				Period:      "June 2021 – Aug 2023",
				Metric:      "92%",
				MetricLabel: "Autism Detection Accuracy",
				Highlights: []string{
					"Engineered feature extraction pipelines to transform raw EEG and eye-tracking clinical data into structured features: coherence, Hjorth parameters, and spectral power bands for EEG; gaze patterns and fixation analysis for eye-tracking.",
					"Trained predictive models for neurological and mental health disorder diagnosis, achieving 80% accuracy for Parkinson's and 82% for Schizophrenia from EEG signals, and 92% for Autism from eye-tracking data.",
				},
			},
		},
		Projects: []Project{
			{
				Slug:     "sherlock-ai",
				Title:    "Sherlock-AI: Character Emulation with LLMs",
				Problem:  "Can a fine-tuned LLM authentically emulate a literary character's personality, reasoning style, and speech patterns?",
				Approach: "Designed a resource-efficient, transferable character emulation pipeline: fine-tuned a quantized LLaMA model with LoRA for Sherlock Holmes emulation, automating dialogue extraction from public domain texts and deploying on RunPod.",
				TechStack: []string{
					"Hugging Face Transformers", "LoRA", "Flask", "RunPod", "OpenRouter", "PostgreSQL",
				},
				Metrics: []Metric{
					{Value: "72.4%", Label: "User Preference over Baseline"},
					{Value: "100%", Label: "Usability Score"},
				},
				Highlights: []string{
					"Built a web chat application for Sherlock role-play with text-to-speech, character customisability, and PostgreSQL-based chat management.",
					"In A/B testing, 72.4% of users favoured the fine-tuned model over the baseline for authenticity.",
				},
				Links: []Link{
					{Label: "Repository", URL: "https://github.com/mustafameh/Sherlock-LLM"},
				},
			},
			{
				Slug:     "course-companion",
				Title:    "CourseCompanion: RAG-Powered Course Assistant",
				Problem:  "How can professors instantly create AI teaching assistants from their existing course materials?",
				Approach: "Developed an educational platform enabling professors to create AI teaching assistants that auto-generate knowledge bases from course materials, with chat interfaces, FAQ system, and management dashboards.",
				TechStack: []string{
					"LangChain", "OAuth", "Flask", "PostgreSQL", "Flair", "DigitalOcean", "OpenRouter",
				},
				Metrics: []Metric{
					{Value: "RAG", Label: "Retrieval-Augmented Generation"},
				},
				Highlights: []string{
					"Built a scalable backend with LangChain and Flair for context-aware responses, deployed on DigitalOcean with Google Drive integration.",
					"Professors can create AI assistants from their own materials with zero ML knowledge required.",
				},
				Links: []Link{
					{Label: "Repository", URL: "https://github.com/mustafameh/Course-Content-Q-A"},
				},
			},
			{
				Slug:     "deepgaze",
				Title:    "DeepGaze: Autism Diagnosis via Webcam Eye-Tracking",
				Problem:  "Can affordable webcam-based eye-tracking replace expensive clinical equipment for early autism screening?",
				Approach: "Designed approaches for early autism detection using eye-tracking data visualized as images: implemented PCA with traditional classifiers and developed a custom CNN with transfer learning, achieving 92% accuracy.",
				TechStack: []string{
					"Python", "Keras", "OpenCV", "WebGazer.js", "Flask", "sklearn", "JavaScript",
				},
				Metrics: []Metric{
					{Value: "92%", Label: "Detection Accuracy"},
					{Value: "CNN", Label: "Custom Architecture + Transfer Learning"},
				},
				Highlights: []string{
					"Developed a modular web app combining webcam eye-tracking data collection, preprocessing, and visualization with autism prediction.",
					"Supports model retraining, custom uploads, adjustable parameters — enhancing clinical accessibility.",
				},
				Links: []Link{
					{Label: "Demo Video", URL: "https://youtu.be/c82RrlJVLvo"},
					{Label: "Repository", URL: "https://github.com/mustafameh/Automatic-Autism-Diagnosis-Eyetracking-Machinelearning-Research-Webapplication"},
				},
			},
		},
		SkillDomains: []SkillDomain{
			{ID: "ml", Label: "ML / Deep Learning"},
			{ID: "nlp", Label: "NLP / LLMs"},
			{ID: "infra", Label: "Infrastructure"},
			{ID: "web", Label: "Web / Visualization"},
		},
		Skills: []Skill{
			{Name: "PyTorch", Domain: "ml", Projects: []string{"sherlock-ai"}},
			{Name: "TensorFlow", Domain: "ml", Projects: []string{"deepgaze"}},
			{Name: "scikit-learn", Domain: "ml", Projects: []string{"deepgaze"}},
			{Name: "Keras", Domain: "ml", Projects: []string{"deepgaze"}},
			{Name: "OpenCV", Domain: "ml", Projects: []string{"deepgaze"}},
			{Name: "Hugging Face", Domain: "nlp", Projects: []string{"sherlock-ai"}},
			{Name: "LangChain", Domain: "nlp", Projects: []string{"course-companion"}},
			{Name: "LoRA / PEFT", Domain: "nlp", Projects: []string{"sherlock-ai"}},
			{Name: "spaCy", Domain: "nlp"},
			{Name: "NLTK", Domain: "nlp"},
			{Name: "Pydantic AI", Domain: "nlp"},
			{Name: "Claude SDK", Domain: "nlp"},
			{Name: "Docker", Domain: "infra"},
			{Name: "AWS", Domain: "infra"},
			{Name: "PostgreSQL", Domain: "infra", Projects: []string{"sherlock-ai", "course-companion"}},
			{Name: "Git / CI/CD", Domain: "infra"},
			{Name: "Spark / Databricks", Domain: "infra"},
			{Name: "RunPod", Domain: "infra", Projects: []string{"sherlock-ai"}},
			{Name: "Flask", Domain: "web", Projects: []string{"sherlock-ai", "course-companion", "deepgaze"}},
			{Name: "JavaScript", Domain: "web", Projects: []string{"deepgaze"}},
			{Name: "D3.js", Domain: "web"},
			{Name: "REST APIs", Domain: "web"},
			{Name: "HTML/CSS", Domain: "web"},
			{Name: "Python", Domain: "web"},
		},
		Education: Education{
			University: "University of Nottingham",
			Location:   "Nottingham, UK",
			Degrees: []Degree{
				{Level: "MSc", Field: "Artificial Intelligence", Grade: "Distinction", Period: "Sept 2023 – Dec 2024"},
				{Level: "BSc (Hons)", Field: "Computer Science", Period: "Sept 2020 – Aug 2023"},
			},
			Modules: []string{
				"Machine Learning",
				"Computer Vision",
				"Natural Language Processing",
				"Big Data",
				"Information Visualisation",
			},
		},
		Publication: Publication{
			Authors:   "Mehmood, M., Amin, H. U.",
			Year:      2024,
			Title:     "Pre-diagnosis for Autism Spectrum Disorder Using Eye-Tracking and Machine Learning Techniques",
			Journal:   "Advances in Brain Inspired Cognitive Systems",
			Publisher: "Springer Nature Singapore",
			DOI:       "https://doi.org/10.1007/978-981-97-1417-9_23",
			Summary:   "This work presents a novel approach to early autism spectrum disorder screening using commodity webcam eye-tracking combined with machine learning. By converting gaze patterns into visual representations and applying both classical ML and deep learning classifiers, we achieved 92% detection accuracy — demonstrating that affordable, accessible tools can support clinical pre-diagnosis.",
		},
	}
}
