package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/artem13815/cooked/pkg/classify"
	"github.com/artem13815/cooked/pkg/nlp"
	"github.com/artem13815/cooked/pkg/resume"
	"github.com/artem13815/cooked/pkg/scoring"
)

// Input is one uploaded résumé. Skills, when non-nil, replaces the detected
// skill list with the user's edited one.
type Input struct {
	Filename   string
	Data       []byte
	Skills     []string
	MaxCourses int
}

// UseCase covers the user flow (analyze, save) and the admin panel reads.
type UseCase interface {
	Analyze(ctx context.Context, in Input) (Report, error)
	Save(ctx context.Context, rep Report) (SavedAnalysis, error)
	List(ctx context.Context, limit, offset int) ([]SavedAnalysis, error)
	All(ctx context.Context) ([]SavedAnalysis, error)
	Distribution(ctx context.Context) ([]FieldCount, error)
}

// Extractor detects contact fields and skills in résumé text.
type Extractor interface {
	Extract(ctx context.Context, text string) resume.Record
}

type service struct {
	reader     resume.Reader
	extractor  Extractor
	classifier *classify.Classifier
	picker     *CoursePicker
	repo       Repository
	signer     ReportSigner
	now        func() time.Time
	log        *slog.Logger
	maxBytes   int
}

// Option customises the service.
type Option func(*service)

func WithRepository(repo Repository) Option   { return func(s *service) { s.repo = repo } }
func WithCoursePicker(p *CoursePicker) Option { return func(s *service) { s.picker = p } }
func WithClock(now func() time.Time) Option   { return func(s *service) { s.now = now } }
func WithLogger(l *slog.Logger) Option        { return func(s *service) { s.log = l } }
func WithReportSigner(rs ReportSigner) Option { return func(s *service) { s.signer = rs } }

// WithMaxBytes caps the accepted upload size. Zero means no limit.
func WithMaxBytes(n int) Option { return func(s *service) { s.maxBytes = n } }

// NewService wires the analysis pipeline. Without a repository, Save reports
// ErrStoreUnavailable and the admin reads return it as well.
func NewService(reader resume.Reader, extractor Extractor, classifier *classify.Classifier, opts ...Option) UseCase {
	s := &service{
		reader:     reader,
		extractor:  extractor,
		classifier: classifier,
		now:        time.Now,
		log:        slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.picker == nil {
		s.picker = NewTimeSeededCoursePicker()
	}
	return s
}

func (s *service) Analyze(ctx context.Context, in Input) (Report, error) {
	if len(in.Data) == 0 {
		return Report{}, ErrValidation("file is empty")
	}
	if s.maxBytes > 0 && len(in.Data) > s.maxBytes {
		return Report{}, ErrValidation(fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	doc, err := s.reader.Read(in.Filename, in.Data)
	var warning string
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return Report{}, ErrValidation(err.Error())
		}
		// unreadable documents are analysed as empty text
		s.log.WarnContext(ctx, "resume text extraction failed", "filename", in.Filename, "error", err)
		doc = resume.Document{}
		warning = "could not extract text from the document"
	}

	rec := s.extractor.Extract(ctx, doc.Text)
	skills := nlp.MergeSkills(rec.Skills)
	if in.Skills != nil {
		skills = nlp.MergeSkills(in.Skills)
	}

	pred := s.classifier.Predict(skills, doc.Text)
	checks := scoring.Evaluate(doc.Text)
	courses := []classify.Course{}
	if pred.Field != classify.Unknown {
		courses = s.picker.Pick(pred.RecommendedCourses, clampCourses(in.MaxCourses))
	}

	rep := Report{
		Filename:   in.Filename,
		Pages:      doc.Pages,
		Record:     rec,
		Skills:     skills,
		Prediction: pred,
		Matches:    s.classifier.Matches(skills, doc.Text),
		Checklist:  checks.Items,
		Score:      checks.Score,
		Level:      scoring.LevelForPages(doc.Pages),
		Courses:    courses,
		Warning:    warning,
	}
	if s.signer != nil {
		digest, err := rep.Digest()
		if err != nil {
			return Report{}, err
		}
		if rep.SaveToken, err = s.signer.Sign(digest); err != nil {
			return Report{}, fmt.Errorf("sign report: %w", err)
		}
	}
	s.log.InfoContext(ctx, "resume analysed",
		"filename", in.Filename,
		"pages", doc.Pages,
		"field", pred.Field,
		"score", checks.Score,
	)
	return rep, nil
}

func (s *service) Save(ctx context.Context, rep Report) (SavedAnalysis, error) {
	if s.repo == nil {
		return SavedAnalysis{}, ErrStoreUnavailable
	}
	if err := s.verify(rep); err != nil {
		return SavedAnalysis{}, err
	}
	f := rep.Prediction.Field
	if f == "" {
		f = classify.Unknown
	}
	if f != classify.Unknown && !f.Known() {
		return SavedAnalysis{}, ErrValidation(fmt.Sprintf("unknown field %q", f))
	}
	if rep.Pages < 0 {
		return SavedAnalysis{}, ErrValidation("page count must not be negative")
	}
	if !scoring.ValidScore(rep.Score) {
		return SavedAnalysis{}, ErrValidation(fmt.Sprintf("score %v is not a checklist score", rep.Score))
	}
	if rep.Level != "" && !rep.Level.Valid() {
		return SavedAnalysis{}, ErrValidation(fmt.Sprintf("unknown level %q", rep.Level))
	}
	name := rep.Record.Name
	if name == "" {
		name = "Unknown"
	}
	level := rep.Level
	if level == "" {
		level = scoring.LevelForPages(rep.Pages)
	}

	// recommendations come from the catalog, never from the client
	recSkills := []string{}
	courseNames := []string{}
	if e, ok := s.classifier.Entry(f); ok {
		recSkills = append(recSkills, e.RecommendedSkills...)
		for _, c := range e.Courses {
			courseNames = append(courseNames, c.Name)
		}
	}
	a := SavedAnalysis{
		Name:               name,
		Email:              rep.Record.Email,
		Score:              rep.Score,
		Timestamp:          s.now().UTC().Format(TimestampLayout),
		PageCount:          rep.Pages,
		PredictedField:     string(f),
		UserLevel:          string(level),
		ActualSkills:       nlp.MergeSkills(rep.Skills),
		RecommendedSkills:  recSkills,
		RecommendedCourses: courseNames,
	}
	saved, err := s.repo.Create(ctx, a)
	if err != nil {
		s.log.ErrorContext(ctx, "save analysis", "error", err)
		return SavedAnalysis{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return saved, nil
}

// verify checks the save token when a signer is configured.
func (s *service) verify(rep Report) error {
	if s.signer == nil {
		return nil
	}
	if rep.SaveToken == "" {
		return ErrValidation("report is not signed")
	}
	digest, err := rep.Digest()
	if err != nil {
		return err
	}
	if err := s.signer.Verify(rep.SaveToken, digest); err != nil {
		s.log.Warn("rejected report signature", "error", err)
		return ErrValidation("report signature is invalid or expired")
	}
	return nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]SavedAnalysis, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *service) All(ctx context.Context) ([]SavedAnalysis, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.ListAll(ctx)
}

func (s *service) Distribution(ctx context.Context) ([]FieldCount, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.CountByField(ctx)
}
