package pkg

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Every file defines its own "system" and "user" blocks, so each one is
// parsed into a separate template set.
var promptTemplates = func() map[string]*template.Template {
	entries, err := promptFS.ReadDir("prompts")
	if err != nil {
		panic(err)
	}
	sets := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		sets[entry.Name()] = template.Must(template.ParseFS(promptFS, "prompts/"+entry.Name()))
	}
	return sets
}()

// Prompt is a system instruction plus the user message sent with it.
type Prompt struct {
	System string
	User   string
}

type ResumeTailoringInput struct {
	ResumeText     string
	JobTitle       string
	Company        string
	JobDescription string
}

type OutreachEmailInput struct {
	CandidateSummary string
	JobTitle         string
	Company          string
	RecipientName    string
	Tone             string
}

type CoverLetterInput struct {
	CandidateBackground string
	JobTitle            string
	Company             string
	JobDescription      string
	Tone                string
}

func ResumeAnalysisPrompt(resumeText string) (Prompt, error) {
	return renderPrompt("resume_analysis.tmpl", struct{ ResumeText string }{resumeText})
}

func ResumeTailoringPrompt(in ResumeTailoringInput) (Prompt, error) {
	return renderPrompt("resume_tailoring.tmpl", in)
}

func OutreachEmailPrompt(in OutreachEmailInput) (Prompt, error) {
	return renderPrompt("outreach_email.tmpl", in)
}

func CoverLetterPrompt(in CoverLetterInput) (Prompt, error) {
	return renderPrompt("cover_letter.tmpl", in)
}

func JobParsingPrompt(rawText string) (Prompt, error) {
	return renderPrompt("job_parsing.tmpl", struct{ RawText string }{rawText})
}

func renderPrompt(file string, data any) (Prompt, error) {
	tmpl, ok := promptTemplates[file]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt %s", file)
	}

	var system, user strings.Builder
	if err := tmpl.ExecuteTemplate(&system, "system", data); err != nil {
		return Prompt{}, err
	}
	if err := tmpl.ExecuteTemplate(&user, "user", data); err != nil {
		return Prompt{}, err
	}
	return Prompt{System: system.String(), User: user.String()}, nil
}
