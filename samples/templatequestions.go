package samples

import "context"

// RunTemplateQuestions lists the Google-defined template survey questions
// available for reuse in agent survey configurations.
func RunTemplateQuestions(ctx context.Context, sc *Scenario) error {
	sc.header("List Template Survey Questions")
	questions, err := sc.Client.SurveyQuestions.ListWithContext(ctx)
	if err != nil {
		return err
	}
	sc.print(questions)
	return nil
}
