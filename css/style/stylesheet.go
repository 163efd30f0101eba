// Package style stores the rules of the style sheets of a document
// and resolves the computed style of its elements.
package style

import (
	"sort"

	"go.uber.org/zap"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/css/selector"
	"github.com/benoitkugler/svgstyle/css/validation"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/utils"
)

// Rule is a style rule, as found in a style sheet.
type Rule struct {
	Selectors    selector.List
	Declarations pr.Declarations
}

// ruleEntry is one selector of a rule, with its precedence.
type ruleEntry struct {
	selector     selector.Selector
	declarations pr.Declarations
	specificity  uint32
	position     int
}

// StyleSheet accumulates the rules of one or several style sheets.
// The zero value is an empty, usable sheet.
//
// A StyleSheet is not safe for concurrent use while Parse is called;
// concurrent calls to the matching methods are fine.
type StyleSheet struct {
	rules []Rule
	// sorted by (specificity, position)
	entries []ruleEntry
	imports []string
}

// Parse adds the rules of `css` to the sheet.
// Invalid rules and declarations are dropped.
func (s *StyleSheet) Parse(css string) {
	input := pa.NewTokenStream(pa.Tokenize(css))
	for {
		input.ConsumeWhitespace()
		switch input.Peek().Kind {
		case pa.KEndOfFile:
			return
		case pa.KCDO, pa.KCDC:
			input.Consume()
		case pa.KAtKeyword:
			s.parseAtRule(&input)
		default:
			s.parseStyleRule(&input)
		}
	}
}

// ParseBytes decodes `css` (see parser.DecodeStylesheet) before calling Parse.
func (s *StyleSheet) ParseBytes(css []byte) {
	s.Parse(pa.DecodeStylesheet(css, ""))
}

// Rules returns the parsed rules, in source order.
func (s *StyleSheet) Rules() []Rule { return s.rules }

// Len returns the number of parsed rules.
func (s *StyleSheet) Len() int { return len(s.rules) }

// Imports returns the URLs of the @import rules found so far.
// They are never fetched.
func (s *StyleSheet) Imports() []string { return s.imports }

func (s *StyleSheet) parseAtRule(input *pa.TokenStream) {
	name := input.Peek().Data
	input.Consume()
	start := *input
	for kind := input.Peek().Kind; kind != pa.KEndOfFile && kind != pa.KSemicolon && kind != pa.KLeftCurlyBracket; kind = input.Peek().Kind {
		input.ConsumeComponent()
	}
	prelude := start.Until(*input)
	if input.Peek().Kind == pa.KLeftCurlyBracket {
		input.ConsumeBlock()
	} else {
		input.Consume()
	}

	if !utils.EqualFold(name, "import") {
		logger.WarningLogger.Debugw("ignored at-rule", zap.String("name", name))
		return
	}
	prelude.ConsumeWhitespace()
	var url string
	if token := prelude.Peek(); token.Kind == pa.KString {
		url = token.Data
	} else if u, ok := validation.ParseURL(&prelude); ok {
		url = u
	} else {
		logger.WarningLogger.Debugw("ignored @import rule: missing url")
		return
	}
	s.imports = append(s.imports, url)
	logger.WarningLogger.Debugw("@import rule not fetched", zap.String("url", url))
}

func (s *StyleSheet) parseStyleRule(input *pa.TokenStream) {
	start := *input
	for kind := input.Peek().Kind; kind != pa.KEndOfFile && kind != pa.KLeftCurlyBracket; kind = input.Peek().Kind {
		input.ConsumeComponent()
	}
	prelude := start.Until(*input)
	if input.Empty() {
		logger.WarningLogger.Debugw("ignored rule: missing declaration block")
		return
	}
	block := input.ConsumeBlock()

	text := prelude.Tokens()
	selectors, ok := selector.ParseList(&prelude)
	prelude.ConsumeWhitespace()
	if !ok || !prelude.Empty() {
		logger.WarningLogger.Debugw("ignored rule: invalid selector", zap.String("selector", pa.Serialize(text)))
		return
	}
	s.addRule(Rule{Selectors: selectors, Declarations: validation.ParseDeclarations(block)})
}

func (s *StyleSheet) addRule(rule Rule) {
	s.rules = append(s.rules, rule)
	if len(rule.Declarations) == 0 {
		return
	}
	for _, sel := range rule.Selectors {
		entry := ruleEntry{
			selector:     sel,
			declarations: rule.Declarations,
			specificity:  sel.Specificity(),
			position:     len(s.entries),
		}
		// positions are increasing: insert after the entries with the same specificity
		i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].specificity > entry.specificity })
		s.entries = append(s.entries, ruleEntry{})
		copy(s.entries[i+1:], s.entries[i:])
		s.entries[i] = entry
	}
}

// Match returns the declarations of the rules matching `element`,
// sorted by increasing precedence.
func (s *StyleSheet) Match(element selector.Element) pr.Declarations {
	var out pr.Declarations
	for _, entry := range s.entries {
		if entry.selector.Match(element) {
			out = append(out, entry.declarations...)
		}
	}
	return out
}

// ParseStyle parses the content of a 'style' attribute.
func ParseStyle(css string) pr.Declarations {
	return validation.ParseDeclarations(pa.NewTokenStream(pa.Tokenize(css)))
}
