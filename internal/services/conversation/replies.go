package conversation

// Commands and menu button labels recognized as exact text
const (
	CommandStart = "/start"

	ButtonProfile = "👤 Профиль"
	ButtonPlay    = "🎮 Играть"
	ButtonRating  = "🏆 Рейтинг"
)

// Reply copy, kept in one place so the transition handlers stay readable
const (
	replyAskNickname = "Привет! Введи свой никнейм.\n⚠️ После ввода его нельзя будет изменить!"

	replyNicknameEmpty = "Никнейм не может быть пустым. Попробуй снова:"

	fmtGreeting = "Привет, %s! Добро пожаловать в Скорованка!"

	replyAskTraining = "Хотите пройти обучение? (да/нет)"

	fmtTrainingIntro = "Я загадал число от 1 до 1000. Твоя задача — угадать его!\n" +
		"Ты пишешь число, а я говорю: больше или меньше.\n" +
		"Играем, пока ты не угадаешь 🙂\n\n" +
		"💡 Подсказка для новичка: %s\n\n" +
		"Введи своё первое число:"

	replyTrainingDeclined = "Хорошо! Удачи в игре!"

	replyAskYesNo = "Пожалуйста, напиши 'да' или 'нет'."

	replyGameStart = "Я загадал число от 1 до 1000. Попробуй угадать!"

	replyNotRegistered = "Сначала зарегистрируйся через /start"

	replyAskInteger = "Пожалуйста, введите целое число от 1 до 1000."

	replyOutOfRange = "Число должно быть от 1 до 1000."

	replyGuessHigher = "Больше."

	replyGuessLower = "Меньше."

	fmtAssistHint = "💡 Подсказка: %s"

	fmtWin = "🎉 Поздравляю! Ты угадал число %d за %d попыток!\nТы получил %d XP!"

	fmtProfile = "👤 Профиль:\nID: %d\nНик: %s\nПобед: %d\nXP: %d"

	fmtTopPlayer = "🏆 ТОП-1 игрок:\nНик: %s\nПобед: %d\nXP: %d"

	replyRatingEmpty = "Рейтинг пока пуст."

	replyUseMenu = "Используй кнопки меню."
)

// Affirmative and negative tokens for the training prompt, matched
// case-insensitively
var (
	affirmativeTokens = map[string]bool{"да": true, "yes": true, "д": true}
	negativeTokens    = map[string]bool{"нет": true, "no": true, "н": true}
)
