package x86_64_linux

const (
	digitBuffer     = "digit_buf"
	digitBufferSize = 32
)

// runtimeHelpers follow the default exit. itoa leaves the text for rax in
// digit_buf and returns its address in rsi and length in rdx.
const runtimeHelpers = `itoa:
    mov rcx, digit_buf + 31
    mov byte [rcx], 10
    mov r8, 1
    xor r9, r9
    test rax, rax
    jns .digits
    neg rax
    mov r9, 1
.digits:
    mov rbx, 10
.next:
    xor rdx, rdx
    div rbx
    add dl, '0'
    dec rcx
    mov [rcx], dl
    inc r8
    test rax, rax
    jnz .next
    test r9, r9
    jz .done
    dec rcx
    mov byte [rcx], '-'
    inc r8
.done:
    mov rsi, rcx
    mov rdx, r8
    ret

print_int:
    call itoa
    mov rax, 1
    mov rdi, 1
    syscall
    ret`
