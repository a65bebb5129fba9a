package demo

import "github.com/riwi/jobboard-backend/internal/vacancies"

// Coder is a demo candidate account.
type Coder struct {
	Name  string
	Email string
}

// DefaultCoders are the candidate accounts of the demo data set.
var DefaultCoders = []Coder{
	{Name: "Ana Martínez", Email: "ana.martinez@test.com"},
	{Name: "Carlos López", Email: "carlos.lopez@test.com"},
	{Name: "Diana Rodríguez", Email: "diana.rodriguez@test.com"},
	{Name: "Eduardo Silva", Email: "eduardo.silva@test.com"},
	{Name: "Fernanda Torres", Email: "fernanda.torres@test.com"},
	{Name: "Gabriel Herrera", Email: "gabriel.herrera@test.com"},
	{Name: "Helena Vargas", Email: "helena.vargas@test.com"},
	{Name: "Iván Morales", Email: "ivan.morales@test.com"},
	{Name: "Julia Castillo", Email: "julia.castillo@test.com"},
	{Name: "Kevin Ramírez", Email: "kevin.ramirez@test.com"},
}

func capacity(n int) *int { return &n }

// DefaultVacancies are the published openings of the demo data set.
var DefaultVacancies = []vacancies.CreateVacancyRequest{
	{
		Title:         "Data Scientist Senior",
		Description:   "Únete a nuestro equipo de ciencia de datos para desarrollar modelos de machine learning que impulsen decisiones estratégicas.",
		Technologies:  "Python, Machine Learning, SQL, Pandas, Scikit-learn",
		Seniority:     "Senior",
		SoftSkills:    "Análisis crítico, resolución de problemas, comunicación de insights",
		Location:      "Bogotá",
		Modality:      "hybrid",
		SalaryRange:   "$4,500,000 - $6,500,000 COP",
		Company:       "DataCorp Analytics",
		MaxApplicants: capacity(6),
	},
	{
		Title:         "DevOps Engineer",
		Description:   "Automatiza y optimiza nuestros procesos de desarrollo y despliegue en la nube.",
		Technologies:  "AWS, Docker, Kubernetes, Jenkins, Terraform",
		Seniority:     "Semi Senior",
		SoftSkills:    "Automatización, trabajo bajo presión, colaboración",
		Location:      "Medellín",
		Modality:      "remote",
		SalaryRange:   "$5,500,000 - $8,000,000 COP",
		Company:       "CloudTech Solutions",
		MaxApplicants: capacity(4),
	},
	{
		Title:         "Mobile Developer Flutter",
		Description:   "Desarrolla aplicaciones móviles innovadoras para iOS y Android usando Flutter.",
		Technologies:  "Flutter, Dart, Firebase, REST APIs",
		Seniority:     "Semi Senior",
		SoftSkills:    "Creatividad, atención al detalle, adaptabilidad",
		Location:      "Cali",
		Modality:      "office",
		SalaryRange:   "$4,000,000 - $6,000,000 COP",
		Company:       "AppStudio Mobile",
		MaxApplicants: capacity(7),
	},
	{
		Title:         "Backend Developer Node.js",
		Description:   "Construye APIs robustas y escalables para aplicaciones web de alto tráfico.",
		Technologies:  "Node.js, Express, MongoDB, PostgreSQL, Redis",
		Seniority:     "Semi Senior",
		SoftSkills:    "Lógica de programación, trabajo en equipo, resolución de problemas",
		Location:      "Barranquilla",
		Modality:      "hybrid",
		SalaryRange:   "$3,800,000 - $5,500,000 COP",
		Company:       "ServerSolutions Inc",
		MaxApplicants: capacity(10),
	},
	{
		Title:         "QA Automation Engineer",
		Description:   "Asegura la calidad del software mediante pruebas automatizadas y estrategias de testing.",
		Technologies:  "Selenium, Cypress, Jest, Postman, TestNG",
		Seniority:     "Semi Senior",
		SoftSkills:    "Meticulosidad, comunicación, pensamiento analítico",
		Location:      "Bucaramanga",
		Modality:      "remote",
		SalaryRange:   "$3,200,000 - $4,800,000 COP",
		Company:       "TestLab Quality",
		MaxApplicants: capacity(5),
	},
	{
		Title:         "Product Manager",
		Description:   "Lidera el desarrollo de productos digitales desde la concepción hasta el lanzamiento.",
		Technologies:  "Jira, Figma, Analytics, Roadmapping, Scrum",
		Seniority:     "Senior",
		SoftSkills:    "Liderazgo, visión estratégica, comunicación efectiva",
		Location:      "Bogotá",
		Modality:      "hybrid",
		SalaryRange:   "$6,000,000 - $9,000,000 COP",
		Company:       "InnovaCorp Digital",
		MaxApplicants: capacity(3),
	},
	{
		Title:         "Cybersecurity Analyst",
		Description:   "Protege la infraestructura digital mediante análisis de seguridad y prevención de amenazas.",
		Technologies:  "Penetration Testing, SIEM, Firewall, Vulnerability Assessment",
		Seniority:     "Semi Senior",
		SoftSkills:    "Análisis de riesgos, confidencialidad, atención al detalle",
		Location:      "Medellín",
		Modality:      "office",
		SalaryRange:   "$5,000,000 - $7,500,000 COP",
		Company:       "SecureNet Defense",
		MaxApplicants: capacity(4),
	},
	{
		Title:         "AI/ML Engineer",
		Description:   "Desarrolla soluciones de inteligencia artificial y aprendizaje automático de vanguardia.",
		Technologies:  "TensorFlow, PyTorch, Deep Learning, Computer Vision",
		Seniority:     "Senior",
		SoftSkills:    "Investigación, innovación, pensamiento crítico",
		Location:      "Bogotá",
		Modality:      "remote",
		SalaryRange:   "$7,000,000 - $10,000,000 COP",
		Company:       "AITech Innovations",
		MaxApplicants: capacity(2),
	},
	{
		Title:         "Frontend Developer Vue.js",
		Description:   "Crea interfaces de usuario modernas y responsivas con Vue.js y tecnologías frontend.",
		Technologies:  "Vue.js, Nuxt.js, TypeScript, Tailwind CSS",
		Seniority:     "Junior",
		SoftSkills:    "Creatividad, colaboración, aprendizaje continuo",
		Location:      "Cartagena",
		Modality:      "remote",
		SalaryRange:   "$2,800,000 - $4,200,000 COP",
		Company:       "WebCraft Studio",
		MaxApplicants: capacity(8),
	},
	{
		Title:         "Database Administrator",
		Description:   "Administra y optimiza bases de datos para garantizar rendimiento y disponibilidad.",
		Technologies:  "PostgreSQL, MySQL, MongoDB, Database Optimization",
		Seniority:     "Semi Senior",
		SoftSkills:    "Organización, resolución de problemas, trabajo nocturno",
		Location:      "Pereira",
		Modality:      "hybrid",
		SalaryRange:   "$4,200,000 - $6,000,000 COP",
		Company:       "DataBase Pro",
		MaxApplicants: capacity(5),
	},
}
