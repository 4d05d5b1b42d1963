package survey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cactus-tim/ml-project/internal/encoding"
	"github.com/cactus-tim/ml-project/internal/predict"
)

// #region buttons

const (
	startButton = "Начать тест"
	yesToken    = "Да"
	noToken     = "Нет"
)

// #endregion buttons

// #region links

const (
	bigFiveLink          = "https://www.truity.com/test/big-five-personality-test"
	impulsivityLink      = "https://qxmd.com/calculate/calculator_854/barratt-impulsiveness-scale-bis-11#"
	sensationSeekingLink = "https://psytests.org/multi/zkpqccen-run.html"
)

// #endregion links

// #region prompt-text

const (
	promptGreeting = "Привет. Пройди небольщой опрос и по итогу ты узнаешь вероятность того, " +
		"что ты когда нибудь попробуешь что то из самых популярных наркотиков(или уже попробовал))"
	promptEducation = "Выберите свой уровень образования:"
	promptEthnicity = "Теперь выберите рассу:"

	promptBigFiveError = "Ответьте как в примере:\nO <your_answer>\nC <your_answer>\n" +
		"E <your_answer>\nA <your_answer>\nN <your_answer>"
	promptImpulsivityError      = "Ответьте как в примере: <your_answer>"
	promptSensationSeekingError = "Ответьте как в примере: 8"
	promptYesNoError            = "Ответьте Да или Нет"

	promptAlcohol   = "Вы пробовали когда-либо алкоголь?"
	promptNicotine  = "Вы пробовали когда-либо никотин?"
	promptChocolate = "Вы пробовали когда-либо шоколад?"
	promptCaffeine  = "Вы пробовали когда-либо кофеин?"
	promptRestart   = "Что-то пошло не так. Начните тест заново: /start"
	promptThanks    = "Спасибо за ваши ответы!"

	probabilityLineFormat = "вероятность употребления %s составляет %.2f\n"
)

// #endregion prompt-text

// #region keyboards

func startKeyboard() [][]string {
	return [][]string{{startButton}}
}

func yesNoKeyboard() [][]string {
	return [][]string{{yesToken}, {noToken}}
}

func labelKeyboard(labels []string) [][]string {
	rows := make([][]string, len(labels))
	for i, label := range labels {
		rows[i] = []string{label}
	}
	return rows
}

// #endregion keyboards

// #region prompt-replies

func greetingReply() Reply {
	return Reply{Text: promptGreeting, Keyboard: startKeyboard()}
}

func educationReply() Reply {
	return Reply{Text: promptEducation, Keyboard: labelKeyboard(encoding.EducationLabels)}
}

func ethnicityReply() Reply {
	return Reply{Text: promptEthnicity, Keyboard: labelKeyboard(encoding.EthnicityLabels)}
}

func bigFiveReply(education, ethnicity string) Reply {
	text := fmt.Sprintf(
		"Ваш уровень образования и цвет кожи сохранены. Уровень образования: %s, Цвет кожи: %s\n"+
			"Пожалуйста, пройдите первый [тест](%s) и отправьте результат в формате:\n"+
			"O `<your_answer>`\nC `<your_answer>`\nE `<your_answer>`\nA `<your_answer>`\nN `<your_answer>`\n"+
			" округляй значениея до целых",
		education, ethnicity, bigFiveLink,
	)
	return Reply{Text: text, RemoveKeyboard: true, Markdown: true}
}

func impulsivityReply() Reply {
	text := fmt.Sprintf(
		"Теперь пройдите второй [тест](%s) и отправьте результат в формате:\n`<your_answer>`",
		impulsivityLink,
	)
	return Reply{Text: text, Markdown: true}
}

func sensationSeekingReply() Reply {
	text := fmt.Sprintf(
		"Теперь пройдите третий [тест](%s) и отправьте результат в формате:\n`<your_answer>`\n"+
			"смотри первую шкалу (ImpSS)",
		sensationSeekingLink,
	)
	return Reply{Text: text, Markdown: true}
}

func yesNoReply(question string) Reply {
	return Reply{Text: question, Keyboard: yesNoKeyboard()}
}

// #endregion prompt-replies

// #region result-rendering

// resultReply renders the final probability report, one line per category in
// stable name order.
func resultReply(res predict.Result) Reply {
	names := make([]string, 0, len(res))
	for name := range res {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, probabilityLineFormat, name, res[name])
	}
	return Reply{
		Text:           promptThanks + "\n " + b.String(),
		RemoveKeyboard: true,
	}
}

// #endregion result-rendering
