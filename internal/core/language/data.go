package language

// BuiltinLanguages returns the records shipped with the site, in display order.
//
// A fresh slice is built on every call so the result can be handed straight to
// [NewCatalog].
func BuiltinLanguages() []Language {
	return []Language{
		{
			ID:              "1",
			Name:            "Python",
			Slug:            "python",
			Tagline:         "Simple, Readable, Powerful",
			Description:     "Python is a high-level, general-purpose programming language known for its elegant syntax and readability. It emphasizes code readability and allows programmers to express concepts in fewer lines of code than languages like C++ or Java.",
			LongDescription: "Python was created by Guido van Rossum and first released in 1991. It has become one of the most popular programming languages in the world, especially in fields like data science, machine learning, web development, and automation. Python's design philosophy emphasizes code readability with its notable use of significant whitespace. Its language constructs and object-oriented approach aim to help programmers write clear, logical code for small and large-scale projects.",
			YearCreated:     1991,
			Creator:         "Guido van Rossum",
			Paradigm:        []string{"Object-oriented", "Procedural", "Functional", "Structured"},
			Typing:          "Dynamic, Strong",
			LatestVersion:   "3.12",
			FileExtension:   ".py",
			Popularity: Popularity{
				TIOBERank:         1,
				GitHubRank:        2,
				StackOverflowRank: 1,
			},
			UseCases: []string{
				"Web Development (Django, Flask)",
				"Data Science & Analytics",
				"Machine Learning & AI",
				"Automation & Scripting",
				"Scientific Computing",
				"Backend Development",
			},
			Features: []string{
				"Easy to learn and read",
				"Extensive standard library",
				"Cross-platform compatibility",
				"Large community and ecosystem",
				"Interpreted language",
				"Dynamic typing",
			},
			CodeExample: `# Python Hello World and Basic Example
def greet(name):
    """Function to greet a person"""
    return f"Hello, {name}! Welcome to Python."

# List comprehension example
numbers = [1, 2, 3, 4, 5]
squares = [n**2 for n in numbers]

print(greet("Developer"))
print(f"Squares: {squares}")`,
			Pros: []string{
				"Beginner-friendly syntax",
				"Vast library ecosystem (PyPI)",
				"Strong community support",
				"Versatile applications",
				"Rapid development",
			},
			Cons: []string{
				"Slower execution speed",
				"Not ideal for mobile development",
				"Memory intensive",
				"GIL limitations for threading",
			},
			Companies: []string{"Google", "Instagram", "Spotify", "Netflix", "Dropbox"},
			Color:     "#3776AB",
			Icon:      "🐍",
		},
		{
			ID:              "2",
			Name:            "Java",
			Slug:            "java",
			Tagline:         "Write Once, Run Anywhere",
			Description:     "Java is a class-based, object-oriented programming language designed to have as few implementation dependencies as possible. It's one of the most widely used programming languages for building enterprise-scale applications.",
			LongDescription: "Java was originally developed by James Gosling at Sun Microsystems and released in 1995. The language was designed with the principle of 'Write Once, Run Anywhere' (WORA), meaning that compiled Java code can run on all platforms that support Java without recompilation. Java is known for its platform independence, robustness, security features, and extensive standard library. It powers billions of devices worldwide, from smartphones to enterprise servers.",
			YearCreated:     1995,
			Creator:         "James Gosling (Sun Microsystems)",
			Paradigm:        []string{"Object-oriented", "Class-based", "Concurrent", "Generic"},
			Typing:          "Static, Strong",
			LatestVersion:   "21 LTS",
			FileExtension:   ".java",
			Popularity: Popularity{
				TIOBERank:         4,
				GitHubRank:        3,
				StackOverflowRank: 5,
			},
			UseCases: []string{
				"Enterprise Applications",
				"Android App Development",
				"Web Applications (Spring)",
				"Big Data Technologies",
				"Cloud Computing",
				"Financial Services",
			},
			Features: []string{
				"Platform independent (JVM)",
				"Strong memory management",
				"Multi-threading support",
				"Rich API and libraries",
				"High security",
				"Automatic garbage collection",
			},
			CodeExample: `// Java Hello World and Basic Example
public class HelloWorld {
    public static void main(String[] args) {
        // Greeting method
        String greeting = greet("Developer");
        System.out.println(greeting);
        
        // Array example
        int[] numbers = {1, 2, 3, 4, 5};
        for (int num : numbers) {
            System.out.println("Square: " + (num * num));
        }
    }
    
    public static String greet(String name) {
        return "Hello, " + name + "! Welcome to Java.";
    }
}`,
			Pros: []string{
				"Platform independence",
				"Robust and secure",
				"Excellent for large-scale applications",
				"Strong typing prevents errors",
				"Mature ecosystem",
			},
			Cons: []string{
				"Verbose syntax",
				"Slower than C/C++",
				"Higher memory consumption",
				"Steeper learning curve",
			},
			Companies: []string{"Amazon", "Google", "LinkedIn", "Uber", "Airbnb"},
			Color:     "#007396",
			Icon:      "☕",
		},
		{
			ID:              "3",
			Name:            "C++",
			Slug:            "cpp",
			Tagline:         "Performance Meets Power",
			Description:     "C++ is a powerful general-purpose programming language that extends C with object-oriented features. It provides high performance and fine-grained control over system resources, making it ideal for system software and game development.",
			LongDescription: "C++ was developed by Bjarne Stroustrup starting in 1979 at Bell Labs as an extension of the C language. It was designed to provide high-level features while maintaining the efficiency and flexibility of C. C++ has influenced many other programming languages including Java, C#, and D. It remains one of the most powerful languages for systems programming, game development, and applications where performance is critical.",
			YearCreated:     1985,
			Creator:         "Bjarne Stroustrup",
			Paradigm:        []string{"Object-oriented", "Procedural", "Functional", "Generic"},
			Typing:          "Static, Strong",
			LatestVersion:   "C++23",
			FileExtension:   ".cpp",
			Popularity: Popularity{
				TIOBERank:         3,
				GitHubRank:        4,
				StackOverflowRank: 6,
			},
			UseCases: []string{
				"Game Development",
				"System Programming",
				"Embedded Systems",
				"High-Performance Applications",
				"Operating Systems",
				"Browser Engines",
			},
			Features: []string{
				"High performance",
				"Low-level memory manipulation",
				"Object-oriented programming",
				"Standard Template Library (STL)",
				"Hardware access",
				"Compile-time polymorphism",
			},
			CodeExample: `// C++ Hello World and Basic Example
#include <iostream>
#include <vector>
#include <string>

std::string greet(const std::string& name) {
    return "Hello, " + name + "! Welcome to C++.";
}

int main() {
    std::cout << greet("Developer") << std::endl;
    
    // Vector example
    std::vector<int> numbers = {1, 2, 3, 4, 5};
    for (int num : numbers) {
        std::cout << "Square: " << num * num << std::endl;
    }
    
    return 0;
}`,
			Pros: []string{
				"Exceptional performance",
				"Fine-grained control",
				"Rich standard library",
				"Wide industry adoption",
				"Backward compatible with C",
			},
			Cons: []string{
				"Complex syntax",
				"Manual memory management",
				"Steep learning curve",
				"Longer development time",
			},
			Companies: []string{"Microsoft", "Adobe", "Bloomberg", "Epic Games", "Intel"},
			Color:     "#00599C",
			Icon:      "⚡",
		},
	}
}
