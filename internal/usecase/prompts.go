package usecase

import (
	"fmt"

	"go-recruitment-chatbot/internal/domain"
)

// welcomePrompt is the bilingual welcome + language choice. It is re-sent
// verbatim on any unrecognized reply while the language step is pending.
const welcomePrompt = "Dobrodošli! Za početak odaberite jezik.\n" +
	"Welcome! Please choose your language first.\n\n" +
	"1 - Hrvatski (HR)\n" +
	"2 - English (EN)"

// instructionsPrompt is the static reply sent to unknown senders whose text
// matched no command. Nothing is persisted on that path.
const instructionsPrompt = "Pošaljite PRIJAVA za prijavu na posao, ili PRIJAVA:<broj oglasa> za određeni oglas.\n" +
	"Send PRIJAVA to apply for work, or PRIJAVA:<job number> for a specific posting."

// languageTokens maps accepted case-insensitive replies of the language step
// to stored language codes.
var languageTokens = map[string]string{
	"1":        domain.LanguageCroatian,
	"hr":       domain.LanguageCroatian,
	"hrvatski": domain.LanguageCroatian,
	"2":        domain.LanguageEnglish,
	"en":       domain.LanguageEnglish,
	"english":  domain.LanguageEnglish,
}

// questions holds the per-language script, one question per onboarding field.
var questions = map[string]map[domain.OnboardingField]string{
	domain.LanguageCroatian: {
		domain.FieldName:            "Kako se zovete?",
		domain.FieldLanguagesSpoken: "Koje jezike govorite?",
		domain.FieldAvailability:    "Kada ste dostupni za rad?",
		domain.FieldExperience:      "Ukratko opišite svoje radno iskustvo.",
	},
	domain.LanguageEnglish: {
		domain.FieldName:            "What is your name?",
		domain.FieldLanguagesSpoken: "Which languages do you speak?",
		domain.FieldAvailability:    "When are you available to work?",
		domain.FieldExperience:      "Briefly describe your work experience.",
	},
}

// closingThanks ends the flow after the final field is filled.
var closingThanks = map[string]string{
	domain.LanguageCroatian: "Hvala! Vaša prijava je zaprimljena. Javit ćemo vam se uskoro.",
	domain.LanguageEnglish:  "Thank you! Your application has been received. We will be in touch soon.",
}

// jobWelcome greets an applicant to a specific posting with the job title and
// employer name. Bilingual until the candidate has picked a language.
func jobWelcome(candidate *domain.Candidate, job *domain.JobWithEmployer) string {
	hr := fmt.Sprintf("Pozdrav! Zaprimili smo vašu prijavu za poziciju %q kod poslodavca %s.", job.Title, job.EmployerName)
	en := fmt.Sprintf("Hello! We received your application for the position %q at %s.", job.Title, job.EmployerName)
	if candidate.Language == nil {
		return hr + "\n" + en
	}
	if *candidate.Language == domain.LanguageEnglish {
		return en
	}
	return hr
}
