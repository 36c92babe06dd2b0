package skin

// Element names by category. Pure data; registration order lives in DefaultTable.

var generalElements = []string{
	// cursor
	"cursor.png",
	"cursormiddle.png",
	"cursor-smoke.png",
	"cursortrail.png",
	// playfield
	"play-skip-{n}.png",
	"play-unranked.png",
	"multi-skipped.png",
	// pause screen; only these two have jpg alternatives
	"pause-overlay.png", "pause-overlay.jpg",
	"fail-background.png", "fail-background.jpg",
	"pause-back.png",
	"pause-continue.png",
	"pause-replay.png",
	"pause-retry.png",
	// scorebar
	"scorebar-bg.png",
	"scorebar-colour.png",
	// score numbers
	"score-0.png",
	"score-1.png",
	"score-2.png",
	"score-3.png",
	"score-4.png",
	"score-5.png",
	"score-6.png",
	"score-7.png",
	"score-8.png",
	"score-9.png",
	"score-comma.png",
	"score-dot.png",
	"score-percent.png",
	"score-x.png",
	// ranking grades
	"ranking-XH-small.png",
	"ranking-X-small.png",
	"ranking-SH-small.png",
	"ranking-S-small.png",
	"ranking-A-small.png",
	"ranking-B-small.png",
	"ranking-C-small.png",
	"ranking-D-small.png",
	// in-gameplay leaderboard
	"scoreentry-0.png",
	"scoreentry-1.png",
	"scoreentry-2.png",
	"scoreentry-3.png",
	"scoreentry-4.png",
	"scoreentry-5.png",
	"scoreentry-6.png",
	"scoreentry-7.png",
	"scoreentry-8.png",
	"scoreentry-9.png",
	"scoreentry-comma.png",
	"scoreentry-dot.png",
	"scoreentry-percent.png",
	"scoreentry-x.png",
	// song selection pieces shown in the leaderboard
	"menu-button-background.png",
	"selection-tab.png",
	"star2.png",
	// mod icons, top right during gameplay
	"selection-mod-autoplay.png",
	"selection-mod-cinema.png",
	"selection-mod-doubletime.png",
	"selection-mod-easy.png",
	"selection-mod-flashlight.png",
	"selection-mod-halftime.png",
	"selection-mod-hardrock.png",
	"selection-mod-hidden.png",
	"selection-mod-nightcore.png",
	"selection-mod-nofail.png",
	"selection-mod-perfect.png",
	"selection-mod-suddendeath.png",
	// gameplay sounds
	"applause.wav", "applause.mp3", "applause.ogg",
	"comboburst.wav", "comboburst.mp3", "comboburst.ogg",
	"combobreak.wav", "combobreak.mp3", "combobreak.ogg",
	"failsound.wav", "failsound.mp3", "failsound.ogg",
	// pause screen sounds
	"pause-loop.wav", "pause-loop.mp3", "pause-loop.ogg",
}

var standardElements = []string{
	// hit bursts
	"hit0-{n}.png",
	"hit50-{n}.png",
	"hit100-{n}.png",
	"hit100k-{n}.png",
	"hit300-{n}.png",
	"hit300g-{n}.png",
	"hit300k-{n}.png",
	// mod icons
	"selection-mod-relax2.png",
	"selection-mod-spunout.png",
	"selection-mod-target.png",
	// combo burst
	"comboburst.png",
	"comboburst-{n}.png",
	// combo numbers
	"default-0.png",
	"default-1.png",
	"default-2.png",
	"default-3.png",
	"default-4.png",
	"default-5.png",
	"default-6.png",
	"default-7.png",
	"default-8.png",
	"default-9.png",
	// hit circles
	"approachcircle.png",
	"hitcircle.png",
	"hitcircleoverlay.png",
	"hitcircleoverlay-{n}.png",
	"hitcircleselect.png",
	"followpoint.png",
	"followpoint-{n}.png",
	"lighting.png",
}

var maniaElements = []string{
	"selection-mod-fadein.png",
	"selection-mod-key1.png",
	"selection-mod-key2.png",
	"selection-mod-key3.png",
	"selection-mod-key4.png",
	"selection-mod-key5.png",
	"selection-mod-key6.png",
	"selection-mod-key7.png",
	"selection-mod-key8.png",
	"selection-mod-key9.png",
	"selection-mod-keycoop.png",
	"selection-mod-random.png",
}

var catchElements = []string{
	"inputoverlay-background.png",
	"inputoverlay-key.png",
}

// Mania places the scorebar differently and drops these.
var notManiaElements = []string{
	"scorebar-marker.png",
	"scorebar-ki.png",
	"scorebar-kidanger.png",
	"scorebar-kidanger2.png",
	"selection-mod-relax.png",
}

var countdownElements = []string{
	"count1.png",
	"count2.png",
	"count3.png",
	"go.png",
	"ready.png",
	"count1s.wav", "count1s.mp3", "count1s.ogg",
	"count2s.wav", "count2s.mp3", "count2s.ogg",
	"count3s.wav", "count3s.mp3", "count3s.ogg",
	"gos.wav", "gos.mp3", "gos.ogg",
	"readys.wav", "readys.mp3", "readys.ogg",
}

// sliderb-nd.png and sliderb-spec.png are registered separately in
// sliderBallDecorations so a custom sliderb.png can suppress them.
var sliderElements = []string{
	"sliderstartcircle.png",
	"sliderstartcircleoverlay.png",
	"sliderstartcircleoverlay-{n}.png",
	"sliderendcircle.png",
	"sliderendcircleoverlay.png",
	"sliderendcircleoverlay-{n}.png",
	"sliderfollowcircle.png",
	"sliderfollowcircle-{n}.png",
	"sliderb.png",
	"sliderb{n}.png",
	"sliderscorepoint.png",
	"sliderpoint10.png",
	"sliderpoint30.png",
}

var spinnerElements = []string{
	"spinner-approachcircle.png",
	"spinner-rpm.png",
	"spinner-clear.png",
	"spinner-spin.png",
	"spinner-glow.png",
	"spinner-bottom.png",
	"spinner-top.png",
	"spinner-middle2.png",
	"spinner-middle.png",
	// old-style spinner, still drawn without skin v1
	"spinner-background.png",
	"spinner-circle.png",
	"spinner-metre.png",
	"spinner-osu.png",
	"spinnerspin.wav", "spinnerspin.mp3", "spinnerspin.ogg",
	"spinnerbonus.wav", "spinnerbonus.mp3", "spinnerbonus.ogg",
}

var sliderBallDecorations = []string{
	"sliderb-nd.png",
	"sliderb-spec.png",
}

var breakElements = []string{
	"section-fail.png",
	"section-pass.png",
	"sectionpass.wav", "sectionpass.mp3", "sectionpass.ogg",
	"sectionfail.wav", "sectionfail.mp3", "sectionfail.ogg",
}

// particles maps each hit particle to the legacy hit burst that enables it.
var particles = []struct {
	element  string
	requires string
}{
	{"particle50.png", "hit50.png"},
	{"particle100.png", "hit100.png"},
	{"particle300.png", "hit300.png"},
}
