package vocabulary

// entries is the built-in IELTS-oriented vocabulary bank. Each entry
// carries a learner-facing definition plus category/level/frequency
// metadata used for stats and filtered practice drills.
var entries = []Entry{
	{Word: "climate", Definition: "the general weather conditions of a region over time", Category: "environment", Level: "basic", Frequency: "high"},
	{Word: "emission", Definition: "the release of gas, heat, or light into the air", Category: "environment", Level: "intermediate", Frequency: "high"},
	{Word: "sustainable", Definition: "able to continue without harming the environment", Category: "environment", Level: "intermediate", Frequency: "high"},
	{Word: "renewable", Definition: "naturally replaced, so it is never used up", Category: "environment", Level: "intermediate", Frequency: "high"},
	{Word: "pollution", Definition: "harmful substances introduced into the environment", Category: "environment", Level: "basic", Frequency: "high"},
	{Word: "ecosystem", Definition: "a community of living things and their environment", Category: "environment", Level: "intermediate", Frequency: "medium"},
	{Word: "biodiversity", Definition: "the variety of plant and animal life in an area", Category: "environment", Level: "advanced", Frequency: "medium"},
	{Word: "deforestation", Definition: "the clearing of forests on a large scale", Category: "environment", Level: "advanced", Frequency: "medium"},
	{Word: "conservation", Definition: "the protection of natural resources", Category: "environment", Level: "intermediate", Frequency: "medium"},
	{Word: "drought", Definition: "a long period with little or no rain", Category: "environment", Level: "intermediate", Frequency: "medium"},
	{Word: "habitat", Definition: "the natural home of a plant or animal", Category: "environment", Level: "basic", Frequency: "medium"},
	{Word: "contamination", Definition: "the presence of something harmful or unwanted", Category: "environment", Level: "advanced", Frequency: "low"},

	{Word: "algorithm", Definition: "a set of rules a computer follows to solve a problem", Category: "technology", Level: "intermediate", Frequency: "high"},
	{Word: "artificial", Definition: "made by people rather than occurring naturally", Category: "technology", Level: "basic", Frequency: "high"},
	{Word: "intelligence", Definition: "the ability to learn, understand, and reason", Category: "technology", Level: "basic", Frequency: "high"},
	{Word: "automation", Definition: "the use of machines to do work without people", Category: "technology", Level: "intermediate", Frequency: "medium"},
	{Word: "innovation", Definition: "a new idea, method, or invention", Category: "technology", Level: "intermediate", Frequency: "high"},
	{Word: "digital", Definition: "using computer technology rather than physical means", Category: "technology", Level: "basic", Frequency: "high"},
	{Word: "software", Definition: "the programs that run on a computer", Category: "technology", Level: "basic", Frequency: "high"},
	{Word: "network", Definition: "a group of connected computers or people", Category: "technology", Level: "basic", Frequency: "high"},
	{Word: "database", Definition: "an organized collection of stored information", Category: "technology", Level: "intermediate", Frequency: "medium"},
	{Word: "encryption", Definition: "encoding information so only authorized parties can read it", Category: "technology", Level: "advanced", Frequency: "low"},
	{Word: "interface", Definition: "the point where two systems meet and interact", Category: "technology", Level: "advanced", Frequency: "medium"},
	{Word: "simulation", Definition: "an imitation of a real process or system", Category: "technology", Level: "advanced", Frequency: "low"},

	{Word: "diagnosis", Definition: "the identification of an illness from its symptoms", Category: "health", Level: "intermediate", Frequency: "medium"},
	{Word: "treatment", Definition: "medical care given to cure an illness or injury", Category: "health", Level: "basic", Frequency: "high"},
	{Word: "nutrition", Definition: "the process of getting the food needed for health", Category: "health", Level: "intermediate", Frequency: "medium"},
	{Word: "epidemic", Definition: "a widespread occurrence of a disease", Category: "health", Level: "advanced", Frequency: "medium"},
	{Word: "immunity", Definition: "the body's ability to resist an infection", Category: "health", Level: "advanced", Frequency: "medium"},
	{Word: "therapy", Definition: "treatment intended to heal a disorder", Category: "health", Level: "intermediate", Frequency: "medium"},
	{Word: "symptom", Definition: "a sign that a disease or condition exists", Category: "health", Level: "basic", Frequency: "high"},
	{Word: "wellbeing", Definition: "the state of being comfortable, healthy, and happy", Category: "health", Level: "intermediate", Frequency: "medium"},
	{Word: "vaccine", Definition: "a substance that protects against a disease", Category: "health", Level: "basic", Frequency: "high"},
	{Word: "obesity", Definition: "the condition of being seriously overweight", Category: "health", Level: "intermediate", Frequency: "low"},

	{Word: "curriculum", Definition: "the subjects included in a course of study", Category: "education", Level: "advanced", Frequency: "medium"},
	{Word: "literacy", Definition: "the ability to read and write", Category: "education", Level: "intermediate", Frequency: "medium"},
	{Word: "scholarship", Definition: "money awarded to support a student's education", Category: "education", Level: "intermediate", Frequency: "medium"},
	{Word: "assessment", Definition: "the evaluation of a student's ability or progress", Category: "education", Level: "intermediate", Frequency: "high"},
	{Word: "graduate", Definition: "a person who has completed a degree", Category: "education", Level: "basic", Frequency: "high"},
	{Word: "lecture", Definition: "an educational talk given to an audience", Category: "education", Level: "basic", Frequency: "high"},
	{Word: "seminar", Definition: "a small class for discussion and training", Category: "education", Level: "intermediate", Frequency: "low"},
	{Word: "tuition", Definition: "payment for instruction, especially at a college", Category: "education", Level: "intermediate", Frequency: "medium"},
	{Word: "discipline", Definition: "a branch of knowledge, or controlled behavior", Category: "education", Level: "advanced", Frequency: "medium"},
	{Word: "comprehension", Definition: "the ability to understand something", Category: "education", Level: "advanced", Frequency: "medium"},

	{Word: "revenue", Definition: "the income a company receives from its business", Category: "business", Level: "intermediate", Frequency: "high"},
	{Word: "investment", Definition: "money put into something to earn a profit", Category: "business", Level: "basic", Frequency: "high"},
	{Word: "entrepreneur", Definition: "a person who starts and runs a business", Category: "business", Level: "advanced", Frequency: "medium"},
	{Word: "negotiation", Definition: "discussion aimed at reaching an agreement", Category: "business", Level: "advanced", Frequency: "medium"},
	{Word: "marketing", Definition: "the promotion and selling of products", Category: "business", Level: "basic", Frequency: "high"},
	{Word: "logistics", Definition: "the organization of moving and supplying goods", Category: "business", Level: "advanced", Frequency: "low"},
	{Word: "consumer", Definition: "a person who buys goods or services", Category: "business", Level: "basic", Frequency: "high"},
	{Word: "inflation", Definition: "a general rise in prices over time", Category: "business", Level: "intermediate", Frequency: "medium"},
	{Word: "commerce", Definition: "the large-scale buying and selling of goods", Category: "business", Level: "intermediate", Frequency: "medium"},
	{Word: "productivity", Definition: "the rate at which work is produced", Category: "business", Level: "intermediate", Frequency: "high"},

	{Word: "hypothesis", Definition: "an idea proposed as a starting point for investigation", Category: "science", Level: "advanced", Frequency: "medium"},
	{Word: "experiment", Definition: "a scientific test done to learn something", Category: "science", Level: "basic", Frequency: "high"},
	{Word: "molecule", Definition: "the smallest unit of a chemical compound", Category: "science", Level: "intermediate", Frequency: "medium"},
	{Word: "gravity", Definition: "the force that pulls objects toward each other", Category: "science", Level: "basic", Frequency: "medium"},
	{Word: "evolution", Definition: "gradual change in living things over generations", Category: "science", Level: "intermediate", Frequency: "medium"},
	{Word: "phenomenon", Definition: "a fact or event that can be observed", Category: "science", Level: "advanced", Frequency: "medium"},
	{Word: "laboratory", Definition: "a room equipped for scientific work", Category: "science", Level: "basic", Frequency: "medium"},
	{Word: "analysis", Definition: "a detailed examination of something", Category: "science", Level: "intermediate", Frequency: "high"},
	{Word: "temperature", Definition: "a measure of how hot or cold something is", Category: "science", Level: "basic", Frequency: "high"},
	{Word: "particle", Definition: "an extremely small piece of matter", Category: "science", Level: "intermediate", Frequency: "low"},

	{Word: "community", Definition: "a group of people living in the same place", Category: "society", Level: "basic", Frequency: "high"},
	{Word: "migration", Definition: "the movement of people from one place to another", Category: "society", Level: "intermediate", Frequency: "medium"},
	{Word: "urbanization", Definition: "the growth of cities as people move into them", Category: "society", Level: "advanced", Frequency: "medium"},
	{Word: "inequality", Definition: "an unfair difference between groups of people", Category: "society", Level: "advanced", Frequency: "medium"},
	{Word: "tradition", Definition: "a custom passed down through generations", Category: "society", Level: "basic", Frequency: "high"},
	{Word: "legislation", Definition: "laws made by a government", Category: "society", Level: "advanced", Frequency: "medium"},
	{Word: "welfare", Definition: "the health and happiness of a group of people", Category: "society", Level: "intermediate", Frequency: "medium"},
	{Word: "demographic", Definition: "relating to the structure of a population", Category: "society", Level: "advanced", Frequency: "low"},
	{Word: "citizenship", Definition: "the status of being a member of a country", Category: "society", Level: "intermediate", Frequency: "low"},
	{Word: "infrastructure", Definition: "the basic systems a country needs, like roads and power", Category: "society", Level: "advanced", Frequency: "medium"},
}
