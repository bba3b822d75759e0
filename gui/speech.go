package gui

// TalkStyle selects the speech text color, and for TalkThought and
// TalkSystem the font the scene compiler lays the text out with.
type TalkStyle int

const (
	TalkNormal TalkStyle = iota
	TalkGood
	TalkEvil
	TalkThought
	TalkSystem
)

// TalkPos anchors a speech bubble relative to the talking actor.
// TalkAuto is placed above the actor like TalkN (see theater's
// speechOrigin); no check is made that the bubble fits the canvas.
type TalkPos int

const (
	TalkN TalkPos = iota
	TalkNE
	TalkE
	TalkSE
	TalkS
	TalkSW
	TalkW
	TalkNW
	TalkAuto
)

// Speech is the compiled bubble state a Talk scene node installs on an
// actor: a laid-out paragraph, the bubble style, and the anchor
// position.
type Speech struct {
	Paragraph *Paragraph
	Style     TalkStyle
	Pos       TalkPos
}
