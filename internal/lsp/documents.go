package lsp

import "sync"

// document is an open config file and its latest analysis.
type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open documents keyed by URI. Every write analyzes
// the new content, so a stored document always carries a result that
// matches its text.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Open stores a newly opened document and returns its analysis.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces the content of a document and returns its analysis.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	result := Analyze(uriToFilename(uri), content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the content and analysis of an open document.
func (s *DocumentStore) Get(uri string) (string, *AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, doc.result, ok
}
