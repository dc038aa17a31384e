package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/pkg/llm"
	"ramayana-qa-be/pkg/sarvam"
)

type fakeTranslator struct {
	calls []string // "src->tgt" per invocation
	reply map[string]string
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls = append(f.calls, sourceLang+"->"+targetLang)
	if f.err != nil {
		return "", f.err
	}
	if out, ok := f.reply[text]; ok {
		return out, nil
	}
	return text, nil
}

type fakeRetriever struct {
	passages []Passage
	err      error
	gotQuery string
	gotK     int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, k int) ([]Passage, error) {
	f.gotQuery = query
	f.gotK = k
	return f.passages, f.err
}

type fakeLLM struct {
	reply      string
	err        error
	gotHistory []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.gotHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func hanumanPassages() []Passage {
	return []Passage{
		{Text: "Hanuman, son of the wind god Vayu, serves Rama with boundless devotion.", Kanda: "Kishkindha Kanda", Topic: "Hanuman's origins"},
		{Text: "Hanuman leaps across the ocean to Lanka in search of Sita.", Kanda: "Sundara Kanda", Topic: "The leap to Lanka"},
	}
}

// checkContract verifies the core output invariant: exactly one of answer or
// error, never both, never neither.
func checkContract(t *testing.T, r *Result) {
	t.Helper()
	if (r.Answer == "") == (r.Err == "") {
		t.Fatalf("result violates answer/error contract: answer=%q err=%q", r.Answer, r.Err)
	}
}

func TestAskEnglishSkipsTranslation(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{reply: "Hanuman is the mighty son of Vayu and Rama's greatest devotee."}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "Who is Hanuman?", "English")

	checkContract(t, res)
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if len(translator.calls) != 0 {
		t.Errorf("English session invoked the translator %d times", len(translator.calls))
	}
	if res.QueryEN != "Who is Hanuman?" {
		t.Errorf("QueryEN = %q, want the original query", res.QueryEN)
	}
	if res.Language != "English" {
		t.Errorf("Language = %q, want English", res.Language)
	}
	if len(res.Passages) != 2 {
		t.Errorf("got %d passages, want 2", len(res.Passages))
	}
	if retriever.gotK != DefaultTopK {
		t.Errorf("retriever asked for k=%d, want %d", retriever.gotK, DefaultTopK)
	}
}

func TestAskHindiRoundTrip(t *testing.T) {
	query := "रावण ने सीता का अपहरण क्यों किया?"
	translator := &fakeTranslator{reply: map[string]string{
		query: "Why did Ravana abduct Sita?",
		"Ravana abducted Sita to avenge the humiliation of his sister Shurpanakha.": "रावण ने अपनी बहन शूर्पणखा के अपमान का बदला लेने के लिए सीता का अपहरण किया।",
	}}
	retriever := &fakeRetriever{passages: hanumanPassages()[:1]}
	provider := &fakeLLM{reply: "Ravana abducted Sita to avenge the humiliation of his sister Shurpanakha."}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), query, "Hindi")

	checkContract(t, res)
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	wantCalls := []string{"hi-IN->en-IN", "en-IN->hi-IN"}
	if len(translator.calls) != 2 || translator.calls[0] != wantCalls[0] || translator.calls[1] != wantCalls[1] {
		t.Errorf("translator calls = %v, want %v", translator.calls, wantCalls)
	}
	if retriever.gotQuery != "Why did Ravana abduct Sita?" {
		t.Errorf("retrieval ran against %q, want the English translation", retriever.gotQuery)
	}
	if res.Language != "Hindi" {
		t.Errorf("Language = %q, want Hindi", res.Language)
	}
	if !strings.Contains(res.Answer, "शूर्पणखा") {
		t.Errorf("answer %q is not the back-translated Hindi text", res.Answer)
	}
	if res.QueryEN != "Why did Ravana abduct Sita?" {
		t.Errorf("QueryEN = %q", res.QueryEN)
	}
}

func TestAskUnknownLanguageFallsBackToEnglish(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{reply: "An answer."}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "Who is Rama?", "Klingon")

	checkContract(t, res)
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if len(translator.calls) != 0 {
		t.Errorf("fallback-to-English session invoked the translator: %v", translator.calls)
	}
}

func TestAskGenerationHTTPFailure(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{err: &sarvam.APIError{StatusCode: 500, Body: "model overloaded"}}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "Who is Hanuman?", "English")

	checkContract(t, res)
	if !res.Failed() {
		t.Fatal("expected a failed result")
	}
	if !strings.Contains(res.Err, "500") || !strings.Contains(res.Err, "model overloaded") {
		t.Errorf("error %q should carry status code and body", res.Err)
	}
	if res.Answer != "" {
		t.Errorf("failed result must not carry an answer, got %q", res.Answer)
	}
	if len(res.Passages) != 0 {
		t.Errorf("failed result must carry no passages, got %d", len(res.Passages))
	}
}

func TestAskBlankGenerationIsAFailure(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{reply: "  \n\t "}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "कौन हैं हनुमान?", "Hindi")

	checkContract(t, res)
	if !res.Failed() {
		t.Fatal("whitespace-only generation must fail the request")
	}
	if res.Answer != "" {
		t.Errorf("failed result must not carry an answer, got %q", res.Answer)
	}
	if len(translator.calls) != 1 {
		t.Errorf("translator calls = %v, back-translation must not run on a blank answer", translator.calls)
	}
}

func TestAskRetrievalFailureCarriesRawMessage(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{err: errors.New("no collection found")}
	provider := &fakeLLM{reply: "never reached"}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "Who is Hanuman?", "English")

	checkContract(t, res)
	if !strings.Contains(res.Err, "no collection found") {
		t.Errorf("error %q should carry the raw failure description", res.Err)
	}
	if provider.gotHistory != nil {
		t.Error("generation ran after retrieval failed")
	}
}

func TestAskTranslationFailureAbortsBeforeRetrieval(t *testing.T) {
	translator := &fakeTranslator{err: errors.New("translate down")}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{reply: "never reached"}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "कौन हैं हनुमान?", "Hindi")

	checkContract(t, res)
	if retriever.gotQuery != "" {
		t.Error("retrieval ran after query translation failed")
	}
}

func TestAskEmptyRetrievalStillGenerates(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: nil}
	provider := &fakeLLM{reply: "From my own knowledge: Rama is the prince of Ayodhya."}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	res := p.Ask(context.Background(), "Who is Rama?", "English")

	checkContract(t, res)
	if res.Failed() {
		t.Fatalf("zero passages must not fail the request: %s", res.Err)
	}
	if len(res.Passages) != 0 {
		t.Errorf("got %d passages, want 0", len(res.Passages))
	}
	if len(provider.gotHistory) != 2 {
		t.Fatalf("generation got %d messages, want system+user", len(provider.gotHistory))
	}
	if !strings.Contains(provider.gotHistory[1].Content, "Question: Who is Rama?") {
		t.Error("generation ran without the question")
	}
}

func TestAskSendsPersonaAndRankedContext(t *testing.T) {
	translator := &fakeTranslator{}
	retriever := &fakeRetriever{passages: hanumanPassages()}
	provider := &fakeLLM{reply: "answer"}

	p := NewPipeline(translator, retriever, provider, logger.NewNopLogger())
	p.Ask(context.Background(), "Who is Hanuman?", "English")

	if provider.gotHistory[0].Role != "system" {
		t.Fatalf("first message role = %q, want system", provider.gotHistory[0].Role)
	}
	if !strings.Contains(provider.gotHistory[0].Content, "Valmiki") {
		t.Error("system prompt is missing the persona")
	}
	user := provider.gotHistory[1].Content
	if !strings.Contains(user, "[Passage 1 — Kishkindha Kanda, Topic: Hanuman's origins]") {
		t.Errorf("context block missing labeled first passage:\n%s", user)
	}
	if !strings.Contains(user, "[Passage 2 — Sundara Kanda, Topic: The leap to Lanka]") {
		t.Errorf("context block missing labeled second passage:\n%s", user)
	}
	if strings.Index(user, "[Passage 1") > strings.Index(user, "[Passage 2") {
		t.Error("passages are out of ranked order")
	}
}
