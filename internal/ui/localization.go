package ui

import (
	"log"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeySidebar          = "sidebar"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyCreateInstance   = "create_instance"
	KeyCreateGroup      = "create_group"
	KeyNewInstance      = "new_instance"
	KeyNewGroup         = "new_group"
	KeyRename           = "rename"
	KeyDelete           = "delete"
	KeyDropHere         = "drop_here"
	KeySearch           = "search"
	KeySelected         = "selected"
	KeyNothingSelected  = "nothing_selected"
	KeyOpenFolder       = "open_folder"
	KeyInstancesDir     = "instances_directory"
	KeyBrowse           = "browse"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpenFolder  = "error_open_folder"
	KeyInterfaceSection = "interface_section"
)

// supportedLanguages is ordered; the first entry is the fallback
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = resolveLanguage(string(lang.SystemLocale()))
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// resolveLanguage maps a locale such as "pt-BR" onto a supported language
// code, falling back to English
func resolveLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("Unknown locale %q, falling back to English", locale)
		return "en"
	}

	_, idx, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}

	base, _ := supportedLanguages[idx].Base()
	return base.String()
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

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Launcher",
		KeyFile:             "File",
		KeySidebar:          "Sidebar",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyCreateInstance:   "Create Instance",
		KeyCreateGroup:      "Create Group",
		KeyNewInstance:      "New Instance",
		KeyNewGroup:         "New Group",
		KeyRename:           "Rename",
		KeyDelete:           "Delete",
		KeyDropHere:         "Drop here",
		KeySearch:           "Search",
		KeySelected:         "Selected: %s",
		KeyNothingSelected:  "Nothing selected",
		KeyOpenFolder:       "Open Folder",
		KeyInstancesDir:     "Instances Directory",
		KeyBrowse:           "Browse",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpenFolder:  "Error opening folder",
		KeyInterfaceSection: "Interface Settings",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Лаунчер",
		KeyFile:             "Файл",
		KeySidebar:          "Боковая панель",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyCreateInstance:   "Создать сборку",
		KeyCreateGroup:      "Создать группу",
		KeyNewInstance:      "Новая сборка",
		KeyNewGroup:         "Новая группа",
		KeyRename:           "Переименовать",
		KeyDelete:           "Удалить",
		KeyDropHere:         "Перетащите сюда",
		KeySearch:           "Поиск",
		KeySelected:         "Выбрано: %s",
		KeyNothingSelected:  "Ничего не выбрано",
		KeyOpenFolder:       "Открыть папку",
		KeyInstancesDir:     "Папка сборок",
		KeyBrowse:           "Обзор",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpenFolder:  "Ошибка открытия папки",
		KeyInterfaceSection: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Launcher",
		KeyFile:             "Arquivo",
		KeySidebar:          "Barra lateral",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyCreateInstance:   "Criar Instância",
		KeyCreateGroup:      "Criar Grupo",
		KeyNewInstance:      "Nova Instância",
		KeyNewGroup:         "Novo Grupo",
		KeyRename:           "Renomear",
		KeyDelete:           "Excluir",
		KeyDropHere:         "Solte aqui",
		KeySearch:           "Buscar",
		KeySelected:         "Selecionado: %s",
		KeyNothingSelected:  "Nada selecionado",
		KeyOpenFolder:       "Abrir Pasta",
		KeyInstancesDir:     "Diretório de Instâncias",
		KeyBrowse:           "Navegar",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyErrorOpenFolder:  "Erro ao abrir pasta",
		KeyInterfaceSection: "Interface",
	}
}
