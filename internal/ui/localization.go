package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGreeting          = "greeting"
	KeyBackendLinked     = "backend_linked"
	KeyBackendError      = "backend_error"
	KeyBackendTitle      = "backend_title"
	KeyInternetConnected = "internet_connected"
	KeyInternetError     = "internet_error"
	KeyInternetTitle     = "internet_title"
	KeyVersionMessage    = "version_message"
	KeyVersionTitle      = "version_title"
	KeyQuitMessage       = "quit_message"
	KeyQuitTitle         = "quit_title"
	KeyUserMessage       = "user_message"
	KeyUserTitle         = "user_title"
	KeySettings          = "settings"
	KeySettingsSaved     = "settings_saved"
	KeyDefaultChart      = "default_chart"
	KeyBarOrientation    = "bar_orientation"
	KeyLanguage          = "language"
	KeyRevealBackend     = "reveal_backend"
	KeyChartSettings     = "chart_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyTasks             = "tasks"
	KeyShow              = "show"
	KeyQuit              = "quit"
	KeyErrorOpeningFile  = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Ares",
		KeyGreeting:          "Hello, %s! You have (%d) outstanding tasks to complete.",
		KeyBackendLinked:     "Backend is linked successfully!",
		KeyBackendError:      "Error:  Cannot link to backend.\n\n%v",
		KeyBackendTitle:      "Application Backend",
		KeyInternetConnected: "Internet is connected successfully!",
		KeyInternetError:     "Error:  Cannot connect to the internet.\n\n%v",
		KeyInternetTitle:     "Internet Connection",
		KeyVersionMessage:    "You are running the current version of Ares!\n\nv.%s last updated on %s.",
		KeyVersionTitle:      "Application Version",
		KeyQuitMessage:       "Are you sure you want to quit?",
		KeyQuitTitle:         "Quit Application",
		KeyUserMessage:       "You are signed in as %s.",
		KeyUserTitle:         "User",
		KeySettings:          "Settings",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDefaultChart:      "Default Chart",
		KeyBarOrientation:    "Bar Orientation",
		KeyLanguage:          "Language",
		KeyRevealBackend:     "Reveal backend file when fixing a broken link",
		KeyChartSettings:     "Chart Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyTasks:             "Tasks",
		KeyShow:              "Show",
		KeyQuit:              "Quit",
		KeyErrorOpeningFile:  "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Ares",
		KeyGreeting:          "Привет, %s! У вас (%d) незавершённых задач.",
		KeyBackendLinked:     "Бэкенд успешно подключён!",
		KeyBackendError:      "Ошибка:  Не удалось подключиться к бэкенду.\n\n%v",
		KeyBackendTitle:      "Бэкенд приложения",
		KeyInternetConnected: "Интернет успешно подключён!",
		KeyInternetError:     "Ошибка:  Нет подключения к интернету.\n\n%v",
		KeyInternetTitle:     "Подключение к интернету",
		KeyVersionMessage:    "У вас установлена текущая версия Ares!\n\nv.%s, обновлено %s.",
		KeyVersionTitle:      "Версия приложения",
		KeyQuitMessage:       "Вы уверены, что хотите выйти?",
		KeyQuitTitle:         "Выход из приложения",
		KeyUserMessage:       "Вы вошли как %s.",
		KeyUserTitle:         "Пользователь",
		KeySettings:          "Настройки",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDefaultChart:      "График по умолчанию",
		KeyBarOrientation:    "Ориентация столбцов",
		KeyLanguage:          "Язык",
		KeyRevealBackend:     "Показывать файл бэкенда при исправлении связи",
		KeyChartSettings:     "Настройки графиков",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyTasks:             "Задачи",
		KeyShow:              "Показать",
		KeyQuit:              "Выход",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Ares",
		KeyGreeting:          "Olá, %s! Você tem (%d) tarefas pendentes para concluir.",
		KeyBackendLinked:     "Backend conectado com sucesso!",
		KeyBackendError:      "Erro:  Não foi possível conectar ao backend.\n\n%v",
		KeyBackendTitle:      "Backend da Aplicação",
		KeyInternetConnected: "Internet conectada com sucesso!",
		KeyInternetError:     "Erro:  Não foi possível conectar à internet.\n\n%v",
		KeyInternetTitle:     "Conexão com a Internet",
		KeyVersionMessage:    "Você está usando a versão atual do Ares!\n\nv.%s atualizada em %s.",
		KeyVersionTitle:      "Versão da Aplicação",
		KeyQuitMessage:       "Tem certeza de que deseja sair?",
		KeyQuitTitle:         "Sair da Aplicação",
		KeyUserMessage:       "Você está conectado como %s.",
		KeyUserTitle:         "Usuário",
		KeySettings:          "Configurações",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDefaultChart:      "Gráfico Padrão",
		KeyBarOrientation:    "Orientação das Barras",
		KeyLanguage:          "Idioma",
		KeyRevealBackend:     "Mostrar arquivo do backend ao corrigir a conexão",
		KeyChartSettings:     "Configurações de Gráficos",
		KeyInterfaceSettings: "Configurações da Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyTasks:             "Tarefas",
		KeyShow:              "Mostrar",
		KeyQuit:              "Sair",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
