package game

// rosterNames fixes the load order of the six tournament fighters.
var rosterNames = []string{"petro", "oleg", "vadym", "roma", "andrew_3", "bohdan"}

var displayNames = map[string]string{
	"andrew_3": "Пітух Три Андрія",
	"bohdan":   "Пітух Богдан",
	"oleg":     "Пітух Олег",
	"petro":    "Пітух Петро",
	"roma":     "Пітух Рома",
	"vadym":    "Пітух Вадим",
}

var descriptions = map[string]string{
	"andrew_3": `Троє — сила! 💪
Один веде блог і знає всі тренди (нарцис, але талановитий).
Другий фотографує кожен момент — навіть твій ганебний програш буде в HD! 📸
Третій напише про це вірш... і він буде жорстокий. ✍️
Що поганого може статися? ВСЕ.
Їхній півень не просто кукурікає — він вайбить на всіх платформах!
Тебе розірвуть на контент ще до початку бою! 😈`,
	"bohdan": `ІМЕНИННИК, СУЧКИ! 🎉
Сьогодні ВСЕ для нього — і цей турнір теж.
Кажуть, що змагання підкуплене... 🤫
Бо у цього півня є зв'язки з організаторами.
Але це не точно... чи точно? 😏
День народження — його суперсила.
Хто наважиться побити іменинника?
Тобі потім жити з цим... 🎂💀`,
	"oleg": `Найвищий. 📏
Найголосніший. 📢
Найрозумніший. 🧠
Три «най» в одному півні — задовбав уже хвалитися!
Прилетів зі Штатів — давно не бачив ципочок. 🐔💕
Тому найагресивніший — сублімація, чули?
Коли ти бачив світ, дрібні місцеві півні здаються... ЖАЛЮГІДНИМИ.
Та чи досвіду вистачить, щоб не обісратися на рідній землі? 😤`,
	"petro": `Спокійний і розсудливий... 🧘
Справжній дзен-майстер серед півнів.
АЛЕ.
Як треба — легко дасть пізди. 👊
Найстарший пєтух турніру.
З віком приходить мудрість... і БЕЗЖАЛЬНІСТЬ.
Не ведись на його спокійний вигляд — це тактика!
Він просто чекає, коли ти облажаєшся. А ти облажаєшся. 💀`,
	"roma": `Шикарні уси — шикарний півень! 🥸
Він на Балі ненадовго. 🐕✈️
Але його півень встигне тебе знищити!
Діджеїть так, що твій півень танцює замість бою. 🎧🔥
Ще й продасть тобі твою поразку з посмішкою. 💼😈`,
	"vadym": `Зараз у Штатах, але навіть на відстані його півень може всім НАВАЛЯТИ! 🇺🇸👊
Власник Buba Tea — чайної в стилі Балі. 🧋🌴
Подає найкращі чаї, поки ти подаєш надії.
Його півень працює remote, але б'є ЛОКАЛЬНО.
Distance is not a barrier — для нього і для болю, який він принесе! 💼💀`,
}

func displayNameFor(name string) string {
	if dn, ok := displayNames[name]; ok {
		return dn
	}
	return "Пітух " + capitalize(name)
}

func descriptionFor(name string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	return "Таємничий боєць"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
