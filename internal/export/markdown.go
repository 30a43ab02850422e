package export

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

type document struct {
	b strings.Builder
}

func newDocument(title string, fields ...string) *document {
	d := &document{}
	d.b.WriteString("---\n")
	d.b.Write(frontMatter(title, fields...))
	d.b.WriteString("---\n\n")
	fmt.Fprintf(&d.b, "# %s\n\n", title)
	return d
}

// frontMatter encodes title and the key/value pairs in fields as an ordered
// YAML mapping. Values are double-quoted so YAML 1.1 readers (goldmark-meta)
// keep words like "yes" and timestamps as text.
func frontMatter(title string, fields ...string) []byte {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k, v string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: v},
		)
	}
	add("title", title)
	for i := 0; i+1 < len(fields); i += 2 {
		add(fields[i], fields[i+1])
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		// A mapping of string scalars always encodes.
		panic(fmt.Sprintf("encode frontmatter: %v", err))
	}
	return out
}

func (d *document) heading(text string) {
	fmt.Fprintf(&d.b, "## %s\n\n", text)
}

func (d *document) para(text string) {
	d.b.WriteString(text)
	d.b.WriteString("\n\n")
}

func (d *document) table(header []string, rows [][]string) {
	d.row(header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	d.row(sep)
	for _, r := range rows {
		d.row(r)
	}
	d.b.WriteString("\n")
}

func (d *document) row(cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cell(c)
	}
	fmt.Fprintf(&d.b, "| %s |\n", strings.Join(escaped, " | "))
}

func (d *document) String() string {
	return d.b.String()
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// PlanMarkdown renders a custom development plan.
func PlanMarkdown(plan models.Plan) string {
	fields := []string{}
	if plan.Role != "" {
		fields = append(fields, "role", plan.Role)
	}
	if plan.SavedAt != nil {
		fields = append(fields, "saved_at", plan.SavedAt.UTC().Format(time.RFC3339))
	}
	d := newDocument("Development Plan", fields...)

	if len(plan.Items) == 0 {
		d.para("_No plan items. Add categories and levels to build a plan._")
		return d.String()
	}

	rows := make([][]string, 0, len(plan.Items))
	for i, it := range plan.Items {
		rows = append(rows, []string{fmt.Sprint(i + 1), it.Category, it.Level.String(), it.Description})
	}
	d.table([]string{"#", "Category", "Level", "Goal"}, rows)
	return d.String()
}

// PathMarkdown renders a role's development path with focus areas.
func PathMarkdown(role string, steps []models.PathStep) string {
	d := newDocument(role+" Development Path", "role", role)

	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			s.Category,
			s.CurrentLevel.String(),
			s.TargetLevel.String(),
			fmt.Sprintf("%d%%", s.Progress()),
		})
	}
	d.table([]string{"Category", "Current Level", "Target Level", "Progress"}, rows)

	d.heading("Recommended Focus Areas")
	var focus []string
	for _, s := range steps {
		if s.CurrentLevel < s.TargetLevel {
			focus = append(focus, fmt.Sprintf("- **%s:** Focus on advancing from %s to %s", s.Category, s.CurrentLevel, s.NextLevel()))
		}
	}
	if len(focus) == 0 {
		d.para("All targets reached.")
	} else {
		d.para(strings.Join(focus, "\n"))
	}
	return d.String()
}

// CategoryMarkdown renders a category rubric: bands, levels and subcategories.
func CategoryMarkdown(cat models.SkillCategory) string {
	d := newDocument(cat.Name)

	for _, b := range models.Bands {
		d.heading(b.Label())
		d.para(cat.Description(b))
	}

	d.heading("Levels")
	rows := make([][]string, 0, len(models.Levels))
	for _, l := range models.Levels {
		rows = append(rows, []string{l.String() + " (" + l.Label() + ")", cat.LevelDescription(l), l.Requirement(), l.Guidance()})
	}
	d.table([]string{"Skill Level", "Description", "Requirements", "Guidance"}, rows)

	if len(cat.Subcategories) > 0 {
		d.heading("Subcategories")
		for _, sub := range cat.Subcategories {
			fmt.Fprintf(&d.b, "### %s\n\n", sub.Name)
			for _, b := range models.Bands {
				fmt.Fprintf(&d.b, "- **%s:** %s\n", b.Label(), cell(sub.Description(b)))
			}
			if len(sub.Skills) > 0 {
				fmt.Fprintf(&d.b, "- **Skills:** %s\n", cell(strings.Join(sub.Skills, ", ")))
			}
			d.b.WriteString("\n")
		}
	}
	return d.String()
}

// Body strips the frontmatter block for terminal rendering.
func Body(markdown string) string {
	if !strings.HasPrefix(markdown, "---\n") {
		return markdown
	}
	end := strings.Index(markdown[4:], "\n---\n")
	if end < 0 {
		return markdown
	}
	return strings.TrimLeft(markdown[4+end+5:], "\n")
}
