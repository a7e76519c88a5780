package speech

import (
	"log"
	"math/rand"
)

// sampleTranscripts are short lecture-style passages used when no
// transcription API is available. They keep the upload → practice flow
// working in local development without an API key.
var sampleTranscripts = []string{
	`Welcome to today's lecture on environmental science. Climate change is one of the most pressing challenges facing our planet. The Earth's average temperature has risen by approximately 1.1 degrees Celsius since pre-industrial times. This warming is primarily caused by human activities, especially the burning of fossil fuels. We need to reduce carbon dioxide emissions and transition to renewable energy sources. Individual actions like using public transportation, reducing energy consumption, and supporting sustainable practices can make a significant difference.`,

	`Good morning everyone. Today we will discuss the topic of artificial intelligence in healthcare. AI has the potential to revolutionize medical diagnosis and treatment. Machine learning algorithms can analyze medical images with remarkable accuracy. However, we must also consider the ethical implications of AI in medicine. Patient privacy and data security are crucial concerns. Doctors will work alongside AI systems to provide better patient care.`,

	`Hello and welcome to this business presentation. Our company has achieved significant growth this quarter. Sales have increased by 25% compared to the same period last year. Customer satisfaction ratings have also improved. We attribute this success to our innovative products and excellent customer service. Looking ahead, we plan to expand into new markets and develop additional features.`,
}

// SampleTranscript returns a canned lecture transcript for mock mode.
func SampleTranscript() *Result {
	log.Println("⚠️  Transcription running in mock mode — returning a sample transcript")

	text := sampleTranscripts[rand.Intn(len(sampleTranscripts))]
	return &Result{Text: text, Duration: EstimateDuration(text)}
}
