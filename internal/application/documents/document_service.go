// Package documents implements contract parsing, summarization, drafting
// and categorization of uploaded or pasted documents.
package documents

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/docparse"
)

// Service runs the document flows
type Service struct {
	parser *docparse.Parser
	gen    aiflow.Generator
	logger *zap.Logger
}

// NewService creates a new document Service
func NewService(parser *docparse.Parser, gen aiflow.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{parser: parser, gen: gen, logger: logger}
}

// ParseContract extracts text from an uploaded file and runs the contract
// parse flow over it. A non-contract upload yields IsContract=false.
func (s *Service) ParseContract(ctx context.Context, fileData []byte, fileName, mimeType string) (*ContractParseResponse, error) {
	if len(fileData) == 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "An uploaded file is required")
	}

	text, err := s.parser.ExtractText(fileData, mimeType)
	if err != nil {
		s.logger.Warn("contract text extraction failed",
			zap.String("file", fileName),
			zap.String("mime", mimeType),
			zap.Error(err))
		return nil, shared.NewDomainError("INVALID_FILE", "Could not extract text from the uploaded file")
	}
	if strings.TrimSpace(text) == "" {
		return nil, shared.NewDomainError("INVALID_FILE", "The uploaded file contains no readable text")
	}

	out, err := flows.ContractParse.Run(ctx, s.gen, flows.ContractParseInput{FileText: text})
	if err != nil {
		return nil, err
	}

	return &ContractParseResponse{
		IsContract:     out.IsContract,
		Parties:        out.Parties,
		EffectiveDate:  out.EffectiveDate,
		ExpiryDate:     out.ExpiryDate,
		PaymentTerms:   out.PaymentTerms,
		KeyObligations: out.KeyObligations,
		Risks:          out.Risks,
		Summary:        out.Summary,
	}, nil
}

// Summarize runs the document summary flow
func (s *Service) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	out, err := flows.DocumentSummary.Run(ctx, s.gen, flows.DocumentSummaryInput{
		Content: req.Content,
		Focus:   req.Focus,
	})
	if err != nil {
		return nil, err
	}
	return &SummarizeResponse{Summary: out.Summary, KeyPoints: out.KeyPoints}, nil
}

// Draft runs the document draft flow
func (s *Service) Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	out, err := flows.DocumentDraft.Run(ctx, s.gen, flows.DocumentDraftInput{
		DocumentType: req.DocumentType,
		Subject:      req.Subject,
		Tone:         req.Tone,
		Points:       req.Points,
	})
	if err != nil {
		return nil, err
	}
	return &DraftResponse{Title: out.Title, Body: out.Body}, nil
}

var categoryCaser = cases.Title(language.English)

// Categorize runs the document categorize flow. The category name is
// normalized to title case so the same folder is never created twice with
// different casing.
func (s *Service) Categorize(ctx context.Context, req CategorizeRequest) (*CategorizeResponse, error) {
	out, err := flows.DocumentCategorize.Run(ctx, s.gen, flows.DocumentCategorizeInput{
		FileName: req.FileName,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}
	return &CategorizeResponse{
		Category:   categoryCaser.String(strings.ToLower(out.Category)),
		Confidence: out.Confidence,
		Reason:     out.Reason,
	}, nil
}
