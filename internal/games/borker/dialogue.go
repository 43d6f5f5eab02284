package borker

import "github.com/vovakirdan/borker-run/internal/flow"

// Speakers.
const (
	SpeakerBorker    = "Mr Borker"
	SpeakerSandwitch = "SandWitch"
)

var (
	introDialogue = []Line{
		{SpeakerBorker, "*Bork bork*"},
		{SpeakerBorker, "The Sandwitch stole my letter!!"},
		{SpeakerBorker, "Run with me Tashawasha, we have to get it back!!"},
	}

	bossFightDialogue = []Line{
		{SpeakerBorker, "There you are you woofin Sandwitch!!!"},
		{SpeakerBorker, "You are TOAST now!!!"},
		{SpeakerSandwitch, "Quit barkin at me you doggo"},
		{SpeakerSandwitch, "But Im afraid ...."},
		{SpeakerSandwitch, "It's too late mWAHAHAH!!!"},
		{SpeakerSandwitch, "My UWU potion is complete!!!"},
		{SpeakerSandwitch, "I can feel the power MWAHAHA"},
		{SpeakerSandwitch, "and you are dead me FUR real now doggo!!"},
		{SpeakerBorker, "O no ..."},
	}

	battleOpeningDialogue = []Line{
		{SpeakerSandwitch, "It's over Doggo!! You will never get the letter back!"},
		{SpeakerBorker, "Not if we stop you Sandwitch!!"},
	}

	endingDialogue = []Line{
		{SpeakerSandwitch, "Nooo!! My beautiful crust!!"},
		{SpeakerBorker, "*Bork!* The letter is ours again!!"},
		{SpeakerBorker, "We did it Tashawasha!!"},
	}

	gameCompleteDialogue = []Line{
		{"", "You won!"},
		{"", "Thanks for playing"},
	}

	runnerDeathLine = Line{SpeakerBorker, "Don't give up!! Let's keep going Tashawasha!!"}
	battleDeathLine = Line{SpeakerBorker, "Don't give up Tashawasha!! We can beat him!!"}
)

// Converse returns chain steps that show lines one after another, each
// waiting for the viewer to dismiss it.
func Converse(ui UI, lines []Line) []flow.Step {
	steps := make([]flow.Step, len(lines))
	for i, l := range lines {
		steps[i] = func() *flow.Signal { return ui.Say(l) }
	}
	return steps
}
