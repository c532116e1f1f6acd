package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nordicast/go-podplay/podplay"
)

// Filter is a compiled boolean expression over podcasts or episodes.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(), // Allow podcast and episode properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// ParsePodcastFilter parses an expression into a podcast predicate.
// An empty expression matches everything.
func ParsePodcastFilter(expression string) (func(*podplay.Podcast) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(*podplay.Podcast) bool { return true }, nil
	}
	f, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return f.MatchPodcast, nil
}

// ParseEpisodeFilter parses an expression into an episode predicate.
// An empty expression matches everything.
func ParseEpisodeFilter(expression string) (func(*podplay.Episode) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(*podplay.Episode) bool { return true }, nil
	}
	f, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return f.MatchEpisode, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// MatchPodcast evaluates the filter against a podcast.
func (f *Filter) MatchPodcast(podcast *podplay.Podcast) bool {
	return f.run(podcastEnvironment(podcast))
}

// MatchEpisode evaluates the filter against an episode.
func (f *Filter) MatchEpisode(episode *podplay.Episode) bool {
	return f.run(episodeEnvironment(episode))
}

// run executes the program; evaluation errors count as a non-match
func (f *Filter) run(env map[string]any) bool {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Duration helpers for episode lengths in seconds
	env["minutes"] = func(n int) int64 {
		return int64(n) * 60
	}
	env["hours"] = func(n int) int64 {
		return int64(n) * 3600
	}
	// Current time
	env["now"] = time.Now
}

// podcastEnvironment creates the runtime environment for podcast filters
func podcastEnvironment(podcast *podplay.Podcast) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Podcast"] = podcast
	env["hasCategory"] = createHasCategoryFunc(podcast.CategoryID)

	// Direct podcast properties for convenience
	env["ID"] = podcast.ID
	env["Title"] = podcast.Title
	env["Author"] = podcast.Author
	env["Description"] = podcast.Description
	env["Original"] = podcast.Original
	env["LanguageISO"] = podcast.LanguageISO
	env["Popularity"] = podcast.Popularity
	env["Slug"] = stringValue(podcast.Slug)
	env["Type"] = string(podcast.Type)
	env["CategoryID"] = podcast.CategoryID
	env["Seasonal"] = boolValue(podcast.Seasonal)

	return env
}

// episodeEnvironment creates the runtime environment for episode filters
func episodeEnvironment(episode *podplay.Episode) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Episode"] = episode
	env["isTrailer"] = func() bool {
		return episode.Type.IsTrailer()
	}

	// Direct episode properties for convenience
	env["ID"] = episode.ID
	env["Title"] = episode.Title
	env["Description"] = episode.Description
	env["Type"] = string(episode.Type)
	env["Duration"] = episode.DurationSeconds()
	env["EpisodeNumber"] = int64Value(episode.EpisodeNumber)
	env["SeasonNumber"] = int64Value(episode.SeasonNumber)
	env["Published"] = episode.Published.Time
	env["Exclusive"] = episode.Exclusive
	env["Encoded"] = episode.Encoded
	env["MimeType"] = episode.MimeType
	env["Slug"] = episode.Slug
	env["URL"] = episode.URL
	env["PodcastID"] = episode.PodcastID

	return env
}

func createHasCategoryFunc(ids []int64) func(int) bool {
	return func(id int) bool {
		return slices.Contains(ids, int64(id))
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int64Value(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func boolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
