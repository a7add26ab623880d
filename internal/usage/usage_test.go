package usage

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phobologic/repoaudit/internal/model"
)

// corpus is an in-memory TextSource that records which files were read.
type corpus struct {
	texts map[string]string
	reads []string
}

func (c *corpus) Text(path string) string {
	c.reads = append(c.reads, path)
	return c.texts[path]
}

func (c *corpus) paths() []string {
	paths := make([]string, 0, len(c.texts))
	for p := range c.texts {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

var excludes = []string{".stories.", ".test."}

func component(root, name string) model.Symbol {
	return model.Symbol{Name: name, DeclaringPath: root + "/" + name, Category: model.Component, Root: root}
}

func hook(path, name string) model.Symbol {
	return model.Symbol{Name: name, DeclaringPath: path, Category: model.Hook}
}

func TestComponentUsage(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Button/index.tsx":        "export const Button = () => <button />",
		"src/components/atoms/Card/index.tsx":          "export const Card = () => <Button />",
		"src/components/atoms/Badge/index.tsx":         "export const Badge = 1",
		"src/components/atoms/Badge/Badge.stories.tsx": "<Badge />",
		"src/components/atoms/Tag/index.tsx":           "export const Tag = 1",
		"src/app/page.tsx":                             "import { Card } from '@/components/atoms/Card'",
		"src/app/page.test.tsx":                        "<Tag />",
	}}
	s := NewScanner(c.paths(), c, excludes)

	root := "src/components/atoms"
	assert.True(t, s.IsUsed(component(root, "Button")), "referenced from Card")
	assert.True(t, s.IsUsed(component(root, "Card")), "referenced from page")
	assert.False(t, s.IsUsed(component(root, "Badge")), "only its own story mentions it")
	assert.False(t, s.IsUsed(component(root, "Tag")), "only a test mentions it")
}

func TestComponentSelfDeclarationIgnored(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/molecules/Modal/index.tsx":  "export * from './Modal'",
		"src/components/molecules/Modal/Modal.tsx":  "export const Modal = () => null",
		"src/components/molecules/Modal/helpers.ts": "// Modal helpers",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(component("src/components/molecules", "Modal")))
}

func TestComponentPrefixClaimsSiblingDirectory(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Card/index.tsx":       "export const Card = 1",
		"src/components/atoms/CardHeader/index.tsx": "import { Card } from '../Card'",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(component("src/components/atoms", "Card")))
}

func TestSubstringMatchesLongerIdentifier(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Card/index.tsx": "export const Card = 1",
		"src/app/page.tsx":                    "/* renders a CardHeaderTitle */ const s = 'x'",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.True(t, s.IsUsed(component("src/components/atoms", "Card")))
}

func TestMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Card/index.tsx": "export const Card = 1",
		"src/app/page.tsx":                    "const card = 'card'",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(component("src/components/atoms", "Card")))
}

func TestHookUsage(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/hooks/useFoo.ts":      "export function useFoo() {}",
		"src/hooks/useFoo.test.ts": "useFoo(); useBar()",
		"src/hooks/useBar.ts":      "export function useBar() {}",
		"src/hooks/useBaz.ts":      "export function useBaz() { return useBar() }",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(hook("src/hooks/useFoo.ts", "useFoo")), "test file cannot trigger")
	assert.True(t, s.IsUsed(hook("src/hooks/useBar.ts", "useBar")))
	assert.False(t, s.IsUsed(hook("src/hooks/useBaz.ts", "useBaz")))
}

func TestExcludedFileNeverTriggersAnySymbol(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/hooks/useFoo.test.ts":         "useFoo(); helper()",
		"src/lib/Chart.stories.tsx":        "helper()",
		"src/hooks/useFoo.ts":              "export function useFoo() {}",
		"src/lib/helper.ts":                "export const helper = 1",
		"src/lib/formatters/contest.ts":    "export const contest = 1", // "test" without dots is fine
		"src/lib/formatters/useContest.ts": "contest()",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(hook("src/lib/helper.ts", "helper")))
	assert.True(t, s.IsUsed(hook("src/lib/formatters/contest.ts", "contest")))
	assert.NotContains(t, c.reads, "src/hooks/useFoo.test.ts")
	assert.NotContains(t, c.reads, "src/lib/Chart.stories.tsx")
	assert.Contains(t, s.files, "src/hooks/useFoo.test.ts", "excluded files stay in the corpus")
}

func TestHookExactPathOnly(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/hooks/useFoo.ts":    "export function useFoo() {}",
		"src/hooks/useFoo.ts.js": "useFoo",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.True(t, s.IsUsed(hook("src/hooks/useFoo.ts", "useFoo")))
}

func TestUnreadableFileNeverMatches(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/hooks/useFoo.ts": "export function useFoo() {}",
		"src/app/locked.ts":   "", // Unreadable maps to empty text
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.False(t, s.IsUsed(hook("src/hooks/useFoo.ts", "useFoo")))
}

func TestFirstMatchStopsScan(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/a.ts": "useFoo()",
		"src/b.ts": "useFoo()",
		"src/c.ts": "",
	}}
	s := NewScanner(c.paths(), c, excludes)

	assert.True(t, s.IsUsed(hook("src/hooks/useFoo.ts", "useFoo")))
	assert.Equal(t, []string{"src/a.ts"}, c.reads)
}

func TestScanOneVerdictPerSymbol(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Input/index.tsx": "export const Input = 1",
		"src/hooks/useInput.ts":                "export function useInput() {}",
		"src/app/page.tsx":                     "useInput()",
	}}
	s := NewScanner(c.paths(), c, excludes)

	// A component and a hook may share a name; they are tracked separately.
	syms := []model.Symbol{
		component("src/components/atoms", "Input"),
		hook("src/hooks/useInput.ts", "useInput"),
		hook("src/hooks/useInput.ts", "useInput"),
	}
	verdicts := s.Scan(syms)

	assert.Len(t, verdicts, 3)
	for i, v := range verdicts {
		assert.Equal(t, syms[i], v.Symbol)
		assert.True(t, v.Used)
	}
}

func TestVerdictsIndependentOfOrder(t *testing.T) {
	t.Parallel()

	c := &corpus{texts: map[string]string{
		"src/components/atoms/Button/index.tsx":  "export const Button = 1",
		"src/components/atoms/Card/index.tsx":    "<Button />",
		"src/components/atoms/Avatar/index.tsx":  "export const Avatar = 1",
		"src/components/atoms/Avatar/a.test.tsx": "<Avatar />",
		"src/hooks/useA.ts":                      "useB()",
		"src/hooks/useB.ts":                      "export const useB = 1",
		"src/app/page.tsx":                       "<Card />",
	}}
	root := "src/components/atoms"
	syms := []model.Symbol{
		component(root, "Button"),
		component(root, "Card"),
		component(root, "Avatar"),
		hook("src/hooks/useA.ts", "useA"),
		hook("src/hooks/useB.ts", "useB"),
	}

	want := NewScanner(c.paths(), c, excludes).Scan(syms)

	rng := rand.New(rand.NewSource(1))
	for range 20 {
		files := c.paths()
		rng.Shuffle(len(files), func(i, j int) { files[i], files[j] = files[j], files[i] })
		got := NewScanner(files, c, excludes).Scan(syms)
		assert.Equal(t, want, got)
	}
}
