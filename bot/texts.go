package bot

import (
	"fmt"
	"strings"
)

// User-facing copy, Ukrainian throughout.

const introText = `Привіт, чемпіоне!

Ласкаво просимо до Dana CockFight - найепічнішого чемпіонату з бійок півнів!

Тут СПРАВЖНІ ПІВНІ зійдуться у славетному двобої, а їхні ВЛАСНИКИ та ТРЕНЕРИ будуть готувати своїх бійців до перемоги!

Як це працює:
1. /fighters - познайомся з усіма бійцями та їх тренерами
2. /draw - оголошення боїв: три пари, три битви
3. Голосуй за фаворита та дивись /results

Готовий до бою? Тоді починаємо!

Команда: /help - якщо забудеш команди`

const helpText = `Доступні команди Dana CockFight:

/start - Привітання та опис бота
/fighters - Показати всіх 6 бійців (півні + їх власники)
/draw - Оголосити наступний бій та відкрити голосування
/conference - Пресс-конференція з треш-током
/results - Результати голосування
/help - Показати цю довідку

Порядок дій:
1. Спочатку подивись бійців (/fighters)
2. Оголошуй бої один за одним (/draw)
3. Голосуй та перевіряй результати (/results)

Нехай переможе найсильніший півень!`

const allFightsAnnouncedText = `Всі бої вже оголошено!
Дивись результати голосування: /results
Для нової гри попроси адміністратора зробити /reset.`

const noDrawYetText = `Спочатку оголоси бій!
Використай команду /draw щоб розпочати турнір.`

const contentMissingText = `Контент для цього бою ще не згенеровано.
Запусти крок генерації (drawgen) і спробуй ще раз!`

const fightersMissingText = `Помилка: бійці не завантажені. Зверніться до адміністратора.`

// rosterSize is the number of fighters a tournament needs.
const rosterSize = 6

func incompleteRosterText(found int) string {
	return fmt.Sprintf("Помилка: потрібно %d бійців для жеребкування, але знайдено тільки %d.", rosterSize, found)
}

const fightersOutroText = `Ось усі бійці! Використай /draw для оголошення боїв.`

const allConferencesDoneText = `Усі пресс-конференції завершені!
Дякую за участь у Dana CockFight!`

const nextConferenceText = `Готові до наступної пресс-конференції? Використай /conference!`

const resetDoneText = `Гру скинуто! Турнір починається з чистого аркуша. /draw`

const notAdminText = `Цю команду може використовувати лише організатор турніру.`

const rateLimitedText = `Не так швидко, чемпіоне!`

const genericErrorText = `Виникла помилка. Спробуй ще раз!`

const voteAcceptedNotice = "Голос зараховано!"

const voteDuplicateNotice = "Ти вже голосував у цьому бою!"

const noVotesYetText = `Ще ніхто не проголосував у цьому бою.`

const refreshResultsButtonText = "Оновити результати"

func fightHeader(fight int, f1Display, f2Display string) string {
	return fmt.Sprintf("БІЙ %d:\n%s vs %s", fight, f1Display, f2Display)
}

func votePrompt(f1Display, f2Display string) string {
	return fmt.Sprintf("Хто переможе? Голосуй!\n%s чи %s?", f1Display, f2Display)
}

func conferenceStart(pair int, f1Display, f2Display string) string {
	return fmt.Sprintf(`ПРЕСС-КОНФЕРЕНЦІЯ РОЗПОЧИНАЄТЬСЯ!

БІЙ %d: %s VS %s

Бійці, готові до словесного двобою?
Нехай почнеться ТРЕШ-ТОК!`, pair, f1Display, f2Display)
}

func conferenceRound(round int) string {
	return fmt.Sprintf("--- РАУНД %d ---", round)
}

func conferenceEnd(f1Display, f2Display string) string {
	return fmt.Sprintf(`ПРЕСС-КОНФЕРЕНЦІЯ ЗАВЕРШЕНА!

%s та %s обмінялися "люб'язностями"!

Хто переможе на арені? Дізнаємось незабаром!`, f1Display, f2Display)
}

func resultsHeader(fight int) string {
	return fmt.Sprintf("РЕЗУЛЬТАТИ ГОЛОСУВАННЯ - БІЙ %d", fight)
}

func resultsLine(display string, count, percent int) string {
	return fmt.Sprintf("%s: %d (%d%%)", display, count, percent)
}

func formatResults(fight int, lines []string) string {
	var b strings.Builder
	b.WriteString(resultsHeader(fight))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
