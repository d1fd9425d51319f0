package model

// Section is one of the ten fixed workbook pages.
type Section struct {
	// ID is a short stable identifier, used in URLs and CSS.
	ID string
	// Title is the heading shown in navigation.
	Title string
	// Page is the 1-based page number.
	Page int
}

// Sections lists the workbook pages in order.
var Sections = []Section{
	{ID: "birth", Title: "The Birth of the Idea", Page: 1},
	{ID: "threep", Title: "The 3P Framework", Page: 2},
	{ID: "market", Title: "Market Map", Page: 3},
	{ID: "leverage", Title: "Leverage Map", Page: 4},
	{ID: "unlearn", Title: "Unlearn to Earn", Page: 5},
	{ID: "founder", Title: "Founder Fit Test", Page: 6},
	{ID: "canvas", Title: "Validation Canvas", Page: 7},
	{ID: "mvp", Title: "MVP", Page: 8},
	{ID: "team", Title: "Early Team", Page: 9},
	{ID: "checklist", Title: "Validation Checklist", Page: 10},
}

// FounderStatements are the Founder Fit statements, one per founder score.
var FounderStatements = [FounderStatementCount]string{
	"I enjoy solving tough problems.",
	"I can handle chaos with calm.",
	"I learn quickly from mistakes.",
	"I can sell ideas I believe in.",
	"I stay focused under uncertainty.",
	"I attract motivated people.",
	"I can make decisions with limited info.",
	"I turn feedback into upgrades.",
	"I value impact over applause.",
	"I see failure as feedback, not fear.",
}

// ChecklistItems are the Validation Checklist milestones, one per checklist entry.
var ChecklistItems = [ChecklistItemCount]string{
	"I have defined my ideal customer clearly.",
	"I have validated the pain with at least 5 strangers.",
	"At least 3 of them said they will pay.",
	"I have priced my idea.",
	"I have one small MVP ready.",
	"I have received my first payment or promise to pay.",
	"I have refined my pitch after feedback.",
	"I have documented all feedback loops.",
	"I have set 30-day validation goals.",
	"I have built confidence through clarity.",
}

// LeverageAsset is a row of the Leverage Map reference table.
type LeverageAsset struct {
	Asset    string
	Example  string
	Leverage string
}

// LeverageAssets is the Leverage Map reference table.
var LeverageAssets = []LeverageAsset{
	{Asset: "Skill", Example: "Sales, writing", Leverage: "Offer your skill as a service first"},
	{Asset: "Knowledge", Example: "Industry insights", Leverage: "Build content or consultancy"},
	{Asset: "Network", Example: "Colleagues, mentors", Leverage: "Find early customers"},
	{Asset: "Access", Example: "Tools, platforms", Leverage: "Build faster with what exists"},
	{Asset: "Credibility", Example: "Track record", Leverage: "Convert trust into traction"},
	{Asset: "Time", Example: "Evenings/weekends", Leverage: "Build without quitting"},
	{Asset: "Energy", Example: "Enthusiasm, drive", Leverage: "Create consistent momentum"},
	{Asset: "Tools", Example: "Workfast.ai modules", Leverage: "Automate early steps"},
	{Asset: "Team", Example: "Interns, collaborators", Leverage: "Multiply execution"},
	{Asset: "Social", Example: "Audience or community", Leverage: "Validate ideas publicly"},
}

// UnlearnHabit pairs an old habit with its replacement.
type UnlearnHabit struct {
	Old     string
	Replace string
}

// UnlearnHabits is the Unlearn to Earn reference table.
var UnlearnHabits = []UnlearnHabit{
	{Old: "Waiting for approval", Replace: "Taking initiative"},
	{Old: "Planning endlessly", Replace: "Testing fast"},
	{Old: "Avoiding risk", Replace: "Embracing smart risk"},
	{Old: "Measuring effort", Replace: "Measuring outcomes"},
	{Old: "Talking big", Replace: "Doing small, consistent"},
	{Old: "Blaming others", Replace: "Owning the outcome"},
	{Old: "Seeking validation", Replace: "Seeking feedback"},
	{Old: "Thinking perfect", Replace: "Launching rough"},
	{Old: "Holding fear", Replace: "Holding faith"},
	{Old: "Worrying about failure", Replace: "Learning from failure"},
}

// Prompt describes a labelled input: its key within its group, the label,
// a one-line description and a placeholder.
type Prompt struct {
	Key         string
	Label       string
	Description string
	Placeholder string
}

// CanvasFields lists the Validation Canvas fields in display order.
var CanvasFields = []Prompt{
	{Key: "problem", Label: "Problem", Description: "What pain are you solving?"},
	{Key: "audience", Label: "Audience", Description: "Who experiences it often?"},
	{Key: "solution", Label: "Solution", Description: "How do you solve it practically?"},
	{Key: "differentiator", Label: "Differentiator", Description: "Why are you unique?"},
	{Key: "businessModel", Label: "Business Model", Description: "How do you make money?"},
	{Key: "validation", Label: "Validation", Description: "Who paid or showed intent to pay?"},
	{Key: "feedback", Label: "Feedback", Description: "What did your test users say?"},
	{Key: "pricing", Label: "Pricing", Description: "What is the minimum people pay willingly?"},
	{Key: "channel", Label: "Channel", Description: "Where will you reach customers?"},
	{Key: "nextStep", Label: "Next Step", Description: "What is your 30-day validation plan?"},
}

// MarketSizes lists the TAM/SAM/SOM prompts of the Market Map.
var MarketSizes = []Prompt{
	{
		Key:         "tam",
		Label:       "TAM — Total Addressable Market",
		Description: "Everyone who could ever buy",
		Placeholder: "e.g., All cybersecurity teams globally",
	},
	{
		Key:         "sam",
		Label:       "SAM — Serviceable Available Market",
		Description: "Who you can actually reach",
		Placeholder: "e.g., Indian startups with 10-50 engineers",
	},
	{
		Key:         "som",
		Label:       "SOM — Serviceable Obtainable Market",
		Description: "Who will likely buy from you soon",
		Placeholder: "e.g., 50 startups in Chennai tech ecosystem",
	},
}

// Questions of the three-question sections, in display order. Labels are
// the exact wording used in the exported report.
var (
	BirthQuestions = []Prompt{
		{Key: "q1", Label: "What problem frustrates you enough to fix it?", Placeholder: "Write your answer..."},
		{Key: "q2", Label: "What do people around you constantly complain about?", Placeholder: "Write your answer..."},
		{Key: "q3", Label: "What idea do you find impossible to ignore?", Placeholder: "Write your answer..."},
	}

	MarketQuestions = []Prompt{
		{Key: "q1", Label: "Who exactly am I serving?", Placeholder: "Your answer..."},
		{Key: "q2", Label: "How big is my real reachable market?", Placeholder: "Your answer..."},
		{Key: "q3", Label: "What niche can I win first before I scale?", Placeholder: "Your answer..."},
	}

	LeverageQuestions = []Prompt{
		{Key: "q1", Label: "What 3 things do I already possess that can speed my journey?", Placeholder: "Your answer..."},
		{Key: "q2", Label: "Who in my network can open the first door?", Placeholder: "Your answer..."},
		{Key: "q3", Label: "What am I underutilizing that others would pay for?", Placeholder: "Your answer..."},
	}

	UnlearnQuestions = []Prompt{
		{Key: "biggest", Label: "Which habit is your biggest bottleneck?", Placeholder: "Pick one and explain..."},
		{Key: "q2", Label: "What one belief can you unlearn this week?", Placeholder: "Your answer..."},
		{Key: "q3", Label: "What will you replace it with?", Placeholder: "Your answer..."},
	}

	MVPQuestions = []Prompt{
		{Key: "q1", Label: "What is the smallest version of my idea I can test today?", Placeholder: "Your answer..."},
		{Key: "q2", Label: "Can I explain it in one sentence?", Placeholder: "One sentence pitch..."},
		{Key: "q3", Label: "Can I get one paying customer this week?", Placeholder: "Your plan..."},
	}

	TeamQuestions = []Prompt{
		{Key: "q1", Label: "Who can I onboard with minimal cost and high energy?", Placeholder: "Your answer..."},
		{Key: "q2", Label: "What clear goals will I assign?", Placeholder: "Your answer..."},
		{Key: "q3", Label: "How will I mentor them to grow alongside me?", Placeholder: "Your answer..."},
	}

	FinalQuestions = []Prompt{
		{Key: "q1", Label: "What is my one validated idea by the end of this month?", Placeholder: "Your answer..."},
		{Key: "q2", Label: "Who are my first 3 customers?", Placeholder: "Your answer..."},
		{Key: "q3", Label: "What lesson will I carry to Week 2?", Placeholder: "Your answer..."},
	}
)

// ThreepQuestion is the 3P Framework reflection prompt.
var ThreepQuestion = Prompt{
	Key:         "threepReflection",
	Label:       "Which idea aligns with both your energy and expertise?",
	Placeholder: "Write your reflection...",
}

// CanvasQuestion is the Validation Canvas reflection prompt.
var CanvasQuestion = Prompt{
	Key:         "canvasReflection",
	Label:       "Reflection",
	Placeholder: "Who is the first stranger I can talk to about my idea?",
}
